package booking

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines cart operations. A booking is a pre-payment seat
// reservation; payment capture removes it.
type Service interface {
	// Add inserts the booking unless the (bookedItemId, email) pair is
	// already in the cart. created is false for the duplicate.
	Add(booking *models.Booking) (created bool, id primitive.ObjectID, err error)
	ListByEmail(email string) ([]models.Booking, error)
	Remove(id primitive.ObjectID) error
}
