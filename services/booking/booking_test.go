package booking

import (
	"testing"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mockRepo implements bookingRepo.Repository.
type mockRepo struct {
	GetByPairFunc func(bookedItemID, email string) (*models.Booking, error)
	CreateFunc    func(booking *models.Booking) (primitive.ObjectID, error)
}

func (m *mockRepo) Create(booking *models.Booking) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(booking)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockRepo) GetByPair(bookedItemID, email string) (*models.Booking, error) {
	if m.GetByPairFunc != nil {
		return m.GetByPairFunc(bookedItemID, email)
	}
	return nil, nil
}

func (m *mockRepo) GetByEmail(email string) ([]models.Booking, error) { return nil, nil }
func (m *mockRepo) Delete(id primitive.ObjectID) error                { return nil }

func TestAddCreatesNewBooking(t *testing.T) {
	repo := &mockRepo{}
	svc := &DefaultBookingService{Repo: repo}

	created, id, err := svc.Add(&models.Booking{BookedItemID: "abc", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if id.IsZero() {
		t.Error("id is zero for a created booking")
	}
}

func TestAddIsIdempotentPerPair(t *testing.T) {
	existing := &models.Booking{ID: primitive.NewObjectID(), BookedItemID: "abc", Email: "s@example.com"}
	createCalls := 0
	repo := &mockRepo{
		GetByPairFunc: func(bookedItemID, email string) (*models.Booking, error) {
			if bookedItemID == "abc" && email == "s@example.com" {
				return existing, nil
			}
			return nil, nil
		},
		CreateFunc: func(booking *models.Booking) (primitive.ObjectID, error) {
			createCalls++
			return primitive.NewObjectID(), nil
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	created, id, err := svc.Add(&models.Booking{BookedItemID: "abc", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created {
		t.Error("created = true for duplicate pair")
	}
	if id != existing.ID {
		t.Errorf("id = %v, want existing id", id)
	}
	if createCalls != 0 {
		t.Errorf("Create called %d times, want 0", createCalls)
	}

	// Same item for a different user is a fresh booking.
	created, _, err = svc.Add(&models.Booking{BookedItemID: "abc", Email: "other@example.com"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !created {
		t.Error("created = false for a different email on the same item")
	}
}

func TestAddDuplicateRaceReportsExisting(t *testing.T) {
	// A concurrent Add slips a matching booking in between the existence
	// check and the insert; the unique index rejects the insert.
	winner := &models.Booking{ID: primitive.NewObjectID(), BookedItemID: "abc", Email: "s@example.com"}
	inserted := false
	repo := &mockRepo{
		GetByPairFunc: func(bookedItemID, email string) (*models.Booking, error) {
			if inserted {
				return winner, nil
			}
			return nil, nil
		},
		CreateFunc: func(booking *models.Booking) (primitive.ObjectID, error) {
			inserted = true
			return primitive.NilObjectID, mongo.WriteException{
				WriteErrors: []mongo.WriteError{{Code: 11000}},
			}
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	created, id, err := svc.Add(&models.Booking{BookedItemID: "abc", Email: "s@example.com"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created {
		t.Error("created = true after losing the insert race")
	}
	if id != winner.ID {
		t.Errorf("id = %v, want the surviving booking id", id)
	}
}
