// models/course.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course approval states. Admin approve/deny are plain sets with no
// terminal-state guard, matching the catalog's behavior.
const (
	CourseStatusPending  = "pending"
	CourseStatusApproved = "approved"
	CourseStatusDenied   = "denied"
)

// Course is a bookable class published by an instructor.
type Course struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName" json:"instructorName"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	Seats           int                `bson:"seats" json:"seats"`
	Enrolled        int                `bson:"enrolled" json:"enrolled"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
}

// CourseUpdate is the whitelist of fields an instructor may edit on an
// existing course. Status, enrolled and feedback are never writable here.
type CourseUpdate struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Seats       int     `json:"seats"`
	Description string  `json:"description"`
}
