package payment

import (
	"fmt"
	"time"

	courseRepo "crownart/database/repository/course"
	paymentRepo "crownart/database/repository/payment"
	"crownart/models"
	"crownart/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultPaymentService implements Service.
type DefaultPaymentService struct {
	Repo    paymentRepo.Repository
	Courses courseRepo.Repository
}

// Capture records the payment and its side effects through the repository
// transaction. The server fills the transaction id and date; the client
// never supplies them.
func (s *DefaultPaymentService) Capture(req CaptureRequest) (*models.CaptureResult, error) {
	logger := utils.GetLogger()

	p := &models.Payment{
		Email:         req.Email,
		TransactionID: uuid.New().String(),
		BookingItemID: req.BookingItemID.Hex(),
		BookedItemID:  req.BookedItemID.Hex(),
		Amount:        req.Amount,
		Date:          time.Now(),
	}

	result, err := s.Repo.Capture(p, req.BookingItemID, req.BookedItemID)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment captured",
		zap.String("email", req.Email),
		zap.String("transactionId", result.TransactionID),
		zap.Int64("bookingsDeleted", result.BookingsDeleted))
	return result, nil
}

func (s *DefaultPaymentService) History(email string) ([]models.Payment, error) {
	return s.Repo.GetByEmail(email)
}

// EnrolledCourses resolves the ledger to the courses a user has paid for.
func (s *DefaultPaymentService) EnrolledCourses(email string) ([]models.Course, error) {
	payments, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, nil
	}

	var ids []primitive.ObjectID
	seen := make(map[string]bool)
	for _, p := range payments {
		if seen[p.BookingItemID] {
			continue
		}
		seen[p.BookingItemID] = true
		id, err := primitive.ObjectIDFromHex(p.BookingItemID)
		if err != nil {
			return nil, fmt.Errorf("ledger holds malformed course id %q: %w", p.BookingItemID, err)
		}
		ids = append(ids, id)
	}
	return s.Courses.GetByIDs(ids)
}
