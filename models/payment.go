package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one row of the append-only payment ledger. BookedItemID is the
// caller-supplied id of the originating booking, kept only for cart cleanup.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	BookingItemID string             `bson:"bookingItemId" json:"bookingItemId"`
	BookedItemID  string             `bson:"bookedItemId" json:"bookedItemId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Date          time.Time          `bson:"date" json:"date"`
}

// CaptureResult aggregates the three effects of a payment capture.
type CaptureResult struct {
	PaymentID       primitive.ObjectID `json:"paymentId"`
	TransactionID   string             `json:"transactionId"`
	CoursesModified int64              `json:"coursesModified"`
	BookingsDeleted int64              `json:"bookingsDeleted"`
}
