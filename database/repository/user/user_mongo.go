package userRepo

import (
	"context"
	"fmt"
	"time"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements Repository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a users repository on the given database handle.
func NewMongoUserRepo(db *mongo.Database) Repository {
	repo := &MongoUserRepo{coll: db.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) (primitive.ObjectID, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create user: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when no user
// matches, absent records are not an error.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	return r.find(bson.M{})
}

// GetByRole retrieves all users holding the given role.
func (r *MongoUserRepo) GetByRole(role string) ([]models.User, error) {
	return r.find(bson.M{"role": role})
}

func (r *MongoUserRepo) find(filter bson.M) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// SetRole replaces the role of the user matched by id.
func (r *MongoUserRepo) SetRole(id primitive.ObjectID, role string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set role for user %s: %w", id.Hex(), err)
	}
	return nil
}

// UpdateProfile applies a partial update to the user matched by email.
func (r *MongoUserRepo) UpdateProfile(email string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile for %s: %w", email, err)
	}
	return nil
}
