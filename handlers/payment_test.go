package handlers

import (
	"net/http"
	"testing"

	paymentRepo "crownart/database/repository/payment"
	"crownart/models"
	"crownart/services/payment"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockPaymentService implements payment.Service.
type mockPaymentService struct {
	CreateIntentFunc func(price float64) (string, error)
	CaptureFunc      func(req payment.CaptureRequest) (*models.CaptureResult, error)
	HistoryFunc      func(email string) ([]models.Payment, error)
}

func (m *mockPaymentService) CreateIntent(price float64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(price)
	}
	return "cs_test_secret", nil
}

func (m *mockPaymentService) Capture(req payment.CaptureRequest) (*models.CaptureResult, error) {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(req)
	}
	return &models.CaptureResult{}, nil
}

func (m *mockPaymentService) History(email string) ([]models.Payment, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(email)
	}
	return nil, nil
}

func (m *mockPaymentService) EnrolledCourses(email string) ([]models.Course, error) {
	return nil, nil
}

type captureBody struct {
	Email         string  `json:"email"`
	BookingItemID string  `json:"bookingItemId"`
	BookedItemID  string  `json:"bookedItemId"`
	Amount        float64 `json:"amount"`
}

func captureRouter(svc payment.Service) *gin.Engine {
	h := NewPaymentHandler(svc)
	r := gin.New()
	r.POST("/payments", asUser("buyer@example.com"), h.CapturePaymentHandler)
	r.POST("/create-payment-intent", asUser("buyer@example.com"), h.CreateIntentHandler)
	return r
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	r := captureRouter(&mockPaymentService{})

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", gin.H{"price": 25.0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := decodeBody(t, w)["clientSecret"]; got != "cs_test_secret" {
		t.Errorf("clientSecret = %v, want cs_test_secret", got)
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	r := captureRouter(&mockPaymentService{})

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", gin.H{"price": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCapturePaymentForeignEmail(t *testing.T) {
	captureCalls := 0
	r := captureRouter(&mockPaymentService{CaptureFunc: func(payment.CaptureRequest) (*models.CaptureResult, error) {
		captureCalls++
		return &models.CaptureResult{}, nil
	}})

	w := doJSON(t, r, http.MethodPost, "/payments", captureBody{
		Email:         "victim@example.com",
		BookingItemID: primitive.NewObjectID().Hex(),
		BookedItemID:  primitive.NewObjectID().Hex(),
		Amount:        10,
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	if captureCalls != 0 {
		t.Errorf("Capture called %d times after ownership mismatch, want 0", captureCalls)
	}
}

func TestCapturePaymentMalformedIDs(t *testing.T) {
	r := captureRouter(&mockPaymentService{})

	w := doJSON(t, r, http.MethodPost, "/payments", captureBody{
		Email:         "buyer@example.com",
		BookingItemID: "not-hex",
		BookedItemID:  primitive.NewObjectID().Hex(),
		Amount:        10,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed bookingItemId", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/payments", captureBody{
		Email:         "buyer@example.com",
		BookingItemID: primitive.NewObjectID().Hex(),
		BookedItemID:  "not-hex",
		Amount:        10,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed bookedItemId", w.Code)
	}
}

func TestCapturePaymentSoldOut(t *testing.T) {
	r := captureRouter(&mockPaymentService{CaptureFunc: func(payment.CaptureRequest) (*models.CaptureResult, error) {
		return nil, paymentRepo.ErrCourseUnavailable
	}})

	w := doJSON(t, r, http.MethodPost, "/payments", captureBody{
		Email:         "buyer@example.com",
		BookingItemID: primitive.NewObjectID().Hex(),
		BookedItemID:  primitive.NewObjectID().Hex(),
		Amount:        10,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != true {
		t.Errorf("error = %v, want true", body["error"])
	}
}

func TestCapturePaymentAggregatesResults(t *testing.T) {
	r := captureRouter(&mockPaymentService{CaptureFunc: func(req payment.CaptureRequest) (*models.CaptureResult, error) {
		return &models.CaptureResult{
			PaymentID:       primitive.NewObjectID(),
			TransactionID:   "txn-1",
			CoursesModified: 1,
			BookingsDeleted: 1,
		}, nil
	}})

	w := doJSON(t, r, http.MethodPost, "/payments", captureBody{
		Email:         "buyer@example.com",
		BookingItemID: primitive.NewObjectID().Hex(),
		BookedItemID:  primitive.NewObjectID().Hex(),
		Amount:        49.99,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["transactionId"] != "txn-1" {
		t.Errorf("transactionId = %v, want txn-1", body["transactionId"])
	}
	if body["coursesModified"] != float64(1) {
		t.Errorf("coursesModified = %v, want 1", body["coursesModified"])
	}
	if body["bookingsDeleted"] != float64(1) {
		t.Errorf("bookingsDeleted = %v, want 1", body["bookingsDeleted"])
	}
}
