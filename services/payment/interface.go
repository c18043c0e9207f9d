package payment

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaptureRequest carries one payment capture. BookedItemID is the
// originating booking id as the client supplied it.
type CaptureRequest struct {
	Email         string
	BookingItemID primitive.ObjectID
	BookedItemID  primitive.ObjectID
	Amount        float64
}

// Service defines the payment intent bridge and the ledger operations.
type Service interface {
	// CreateIntent asks the processor for a client-side payment secret
	// covering the given price.
	CreateIntent(price float64) (clientSecret string, err error)
	Capture(req CaptureRequest) (*models.CaptureResult, error)
	History(email string) ([]models.Payment, error)
	EnrolledCourses(email string) ([]models.Course, error)
}
