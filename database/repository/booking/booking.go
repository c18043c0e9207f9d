package bookingRepo

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the store operations on the bookings collection.
type Repository interface {
	Create(booking *models.Booking) (primitive.ObjectID, error)
	GetByPair(bookedItemID, email string) (*models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	Delete(id primitive.ObjectID) error
}
