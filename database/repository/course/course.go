package courseRepo

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the store operations on the courses collection.
type Repository interface {
	Create(course *models.Course) (primitive.ObjectID, error)
	GetByID(id primitive.ObjectID) (*models.Course, error)
	GetByIDs(ids []primitive.ObjectID) ([]models.Course, error)
	GetByStatus(status string) ([]models.Course, error)
	GetByInstructor(email string) ([]models.Course, error)
	GetAll() ([]models.Course, error)
	Popular(limit int64) ([]models.Course, error)
	Update(id primitive.ObjectID, fields bson.M) error
	SetStatus(id primitive.ObjectID, status string) error
	SetFeedback(id primitive.ObjectID, feedback string) error
	Delete(id primitive.ObjectID) error
}
