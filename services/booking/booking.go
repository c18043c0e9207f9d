package booking

import (
	"fmt"

	bookingRepo "crownart/database/repository/booking"
	"crownart/models"
	"crownart/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Repo bookingRepo.Repository
}

// Add inserts a booking, keeping one per (bookedItemId, email) pair.
func (s *DefaultBookingService) Add(booking *models.Booking) (bool, primitive.ObjectID, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByPair(booking.BookedItemID, booking.Email)
	if err != nil {
		return false, primitive.NilObjectID, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing != nil {
		logger.Debug("Add: booking already exists",
			zap.String("bookedItemId", booking.BookedItemID),
			zap.String("email", booking.Email))
		return false, existing.ID, nil
	}

	id, err := s.Repo.Create(booking)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race with a concurrent insert of the same pair; the
		// unique index kept one copy, which is the existing booking.
		if winner, lookupErr := s.Repo.GetByPair(booking.BookedItemID, booking.Email); lookupErr == nil && winner != nil {
			return false, winner.ID, nil
		}
		return false, primitive.NilObjectID, nil
	}
	if err != nil {
		return false, primitive.NilObjectID, err
	}
	return true, id, nil
}

func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultBookingService) Remove(id primitive.ObjectID) error {
	return s.Repo.Delete(id)
}
