package handlers

import (
	"net/http"

	paymentRepo "crownart/database/repository/payment"
	"crownart/middleware"
	"crownart/services/payment"
	"crownart/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment intent bridge and the capture workflow.
type PaymentHandler struct {
	Service payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid price")
		return
	}

	secret, err := h.Service.CreateIntent(body.Price)
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Float64("price", body.Price), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// CapturePaymentHandler handles POST /payments: the transactional capture of
// ledger insert, seat adjustment and booking cleanup.
func (h *PaymentHandler) CapturePaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		Email         string  `json:"email"`
		BookingItemID string  `json:"bookingItemId"`
		BookedItemID  string  `json:"bookedItemId"`
		Amount        float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment payload")
		return
	}
	if body.Email != middleware.AuthedEmail(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden access")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(body.BookingItemID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed bookingItemId")
		return
	}
	bookingID, err := primitive.ObjectIDFromHex(body.BookedItemID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed bookedItemId")
		return
	}

	result, err := h.Service.Capture(payment.CaptureRequest{
		Email:         body.Email,
		BookingItemID: courseID,
		BookedItemID:  bookingID,
		Amount:        body.Amount,
	})
	if err == paymentRepo.ErrCourseUnavailable {
		utils.JSONError(c, http.StatusConflict, "course is sold out or unavailable")
		return
	}
	if err != nil {
		logger.Error("Payment capture failed", zap.String("email", body.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to capture payment")
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentHistoryHandler handles GET /payments/:email.
func (h *PaymentHandler) PaymentHistoryHandler(c *gin.Context) {
	payments, err := h.Service.History(c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// EnrolledCoursesHandler handles GET /enrolledCourses/:email.
func (h *PaymentHandler) EnrolledCoursesHandler(c *gin.Context) {
	courses, err := h.Service.EnrolledCourses(c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list enrolled courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}
