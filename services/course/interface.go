package course

import (
	"errors"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotOwner is returned when an instructor edits a course they did not publish.
var ErrNotOwner = errors.New("course belongs to another instructor")

// Service defines catalog operations.
type Service interface {
	Create(course *models.Course) (primitive.ObjectID, error)
	Approved() ([]models.Course, error)
	All() ([]models.Course, error)
	Popular() ([]models.Course, error)
	GetByID(id primitive.ObjectID) (*models.Course, error)
	ByInstructor(email string) ([]models.Course, error)
	Update(id primitive.ObjectID, update models.CourseUpdate, requesterEmail string) error
	Delete(id primitive.ObjectID) error
	SetFeedback(id primitive.ObjectID, feedback string) error
	Approve(id primitive.ObjectID) error
	Deny(id primitive.ObjectID) error
}
