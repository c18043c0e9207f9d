package user

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines user account operations.
type Service interface {
	// Register performs the idempotent first-sign-in insert keyed by email.
	// created is false when the email is already taken.
	Register(user *models.User) (created bool, id primitive.ObjectID, err error)
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	Instructors() ([]models.User, error)
	HasRole(email, role string) (bool, error)
	SetRole(id primitive.ObjectID, role string) error
	UpdateInstructorProfile(email string, profile models.InstructorProfile) error
}
