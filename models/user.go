// models/user.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can hold. Role changes are admin-gated; new users default
// to RoleStudent.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents a platform user, created on first sign-in.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Role  string             `bson:"role" json:"role"`

	// Instructor profile fields.
	Image         string `bson:"image,omitempty" json:"image,omitempty"`
	Bio           string `bson:"bio,omitempty" json:"bio,omitempty"`
	Qualification string `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Experience    string `bson:"experience,omitempty" json:"experience,omitempty"`
	TeachingArea  string `bson:"teachingArea,omitempty" json:"teachingArea,omitempty"`
}

// InstructorProfile is the whitelist of fields an instructor may edit on
// their own record.
type InstructorProfile struct {
	Name          string `json:"name"`
	Image         string `json:"image"`
	Bio           string `json:"bio"`
	Qualification string `json:"qualification"`
	Experience    string `json:"experience"`
	TeachingArea  string `json:"teachingArea"`
}
