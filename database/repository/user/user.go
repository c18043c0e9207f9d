package userRepo

import (
	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the store operations on the users collection.
type Repository interface {
	Create(user *models.User) (primitive.ObjectID, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByRole(role string) ([]models.User, error)
	SetRole(id primitive.ObjectID, role string) error
	UpdateProfile(email string, fields bson.M) error
}
