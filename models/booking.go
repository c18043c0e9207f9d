package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a pre-payment reservation of a course seat for a user.
// Uniqueness is enforced on the (bookedItemId, email) pair.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookedItemID    string             `bson:"bookedItemId" json:"bookedItemId"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	InstructorEmail string             `bson:"instructorEmail,omitempty" json:"instructorEmail,omitempty"`
}
