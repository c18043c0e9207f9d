package paymentRepo

import (
	"errors"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCourseUnavailable is returned when the paid course has no seats left
// or does not exist; the whole capture is rolled back in that case.
var ErrCourseUnavailable = errors.New("course is sold out or unavailable")

// Repository defines the store operations on the payments ledger.
type Repository interface {
	// Capture atomically inserts the payment, adjusts the course counters
	// and removes the originating booking, all in one transaction.
	Capture(payment *models.Payment, courseID, bookingID primitive.ObjectID) (*models.CaptureResult, error)
	GetByEmail(email string) ([]models.Payment, error)
}
