package paymentRepo

import (
	"fmt"
	"time"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// captureCourseFilter matches the paid course only while it still has a
// free seat, so concurrent captures cannot oversell it.
func captureCourseFilter(courseID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":   courseID,
		"seats": bson.M{"$gt": 0},
	}
}

// captureCourseUpdate adjusts the counters by a relative delta. The
// enrollment increment is always exactly one per capture.
func captureCourseUpdate() bson.M {
	return bson.M{
		"$inc": bson.M{
			"enrolled": 1,
			"seats":    -1,
		},
	}
}

// Capture records a payment and applies its side effects in one transaction:
// ledger insert, seat/enrollment adjustment, booking cleanup. If the course
// condition fails the session aborts and nothing is written. The cleanup key
// (bookingID + payer email) stays caller-supplied, as the client drives it.
func (r *MongoPaymentRepo) Capture(payment *models.Payment, courseID, bookingID primitive.ObjectID) (*models.CaptureResult, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start capture session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		insertRes, err := r.payments().InsertOne(sc, payment)
		if err != nil {
			return nil, fmt.Errorf("failed to record payment: %w", err)
		}

		updateRes, err := r.courses().UpdateOne(sc, captureCourseFilter(courseID), captureCourseUpdate())
		if err != nil {
			return nil, fmt.Errorf("failed to update course counters: %w", err)
		}
		if updateRes.MatchedCount == 0 {
			return nil, ErrCourseUnavailable
		}

		deleteRes, err := r.bookings().DeleteMany(sc, bson.M{"_id": bookingID, "email": payment.Email})
		if err != nil {
			return nil, fmt.Errorf("failed to remove bookings: %w", err)
		}

		paymentID, _ := insertRes.InsertedID.(primitive.ObjectID)
		return &models.CaptureResult{
			PaymentID:       paymentID,
			TransactionID:   payment.TransactionID,
			CoursesModified: updateRes.ModifiedCount,
			BookingsDeleted: deleteRes.DeletedCount,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.CaptureResult), nil
}
