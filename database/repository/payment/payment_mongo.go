package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements Repository using MongoDB. It holds the whole
// database handle rather than one collection: a capture spans payments,
// courses and bookings in a single session.
type MongoPaymentRepo struct {
	db *mongo.Database
}

// NewMongoPaymentRepo creates a payments repository on the given database handle.
func NewMongoPaymentRepo(db *mongo.Database) Repository {
	repo := &MongoPaymentRepo{db: db}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) payments() *mongo.Collection { return r.db.Collection("payments") }
func (r *MongoPaymentRepo) courses() *mongo.Collection  { return r.db.Collection("courses") }
func (r *MongoPaymentRepo) bookings() *mongo.Collection { return r.db.Collection("bookings") }

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}}},
	}

	_, err := r.payments().Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user's payment history, most recent first.
func (r *MongoPaymentRepo) GetByEmail(email string) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.payments().Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
