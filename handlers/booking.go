package handlers

import (
	"net/http"

	"crownart/middleware"
	"crownart/models"
	"crownart/services/booking"
	"crownart/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the cart endpoints.
type BookingHandler struct {
	Service booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /courseBookings?email=. The ownership
// guard has already matched the query email against the token.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListByEmail(c.Query("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AddBookingHandler handles POST /courseBookings, the existence-gated insert
// on the (bookedItemId, email) pair.
func (h *BookingHandler) AddBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}
	if b.Email != middleware.AuthedEmail(c) {
		utils.JSONError(c, http.StatusForbidden, "forbidden access")
		return
	}

	created, id, err := h.Service.Add(&b)
	if err != nil {
		logger.Error("Failed to add booking",
			zap.String("bookedItemId", b.BookedItemID),
			zap.String("email", b.Email),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to add booking")
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "booking already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// DeleteBookingHandler handles DELETE /courseBookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Remove(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
