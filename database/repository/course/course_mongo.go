package courseRepo

import (
	"context"
	"fmt"
	"time"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCourseRepo implements Repository using MongoDB.
type MongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo creates a courses repository on the given database handle.
func NewMongoCourseRepo(db *mongo.Database) Repository {
	repo := &MongoCourseRepo{coll: db.Collection("courses")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create course indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new course document.
func (r *MongoCourseRepo) Create(course *models.Course) (primitive.ObjectID, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create course: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// GetByID retrieves one course. Returns (nil, nil) when no course matches.
func (r *MongoCourseRepo) GetByID(id primitive.ObjectID) (*models.Course, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", id.Hex(), err)
	}
	return &course, nil
}

// GetByIDs retrieves every course whose id appears in ids.
func (r *MongoCourseRepo) GetByIDs(ids []primitive.ObjectID) ([]models.Course, error) {
	return r.find(bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// GetByStatus retrieves courses in the given approval state.
func (r *MongoCourseRepo) GetByStatus(status string) ([]models.Course, error) {
	return r.find(bson.M{"status": status}, nil)
}

// GetByInstructor retrieves the courses published by one instructor.
func (r *MongoCourseRepo) GetByInstructor(email string) ([]models.Course, error) {
	return r.find(bson.M{"instructorEmail": email}, nil)
}

// GetAll retrieves the whole catalog, pending and denied included.
func (r *MongoCourseRepo) GetAll() ([]models.Course, error) {
	return r.find(bson.M{}, nil)
}

// Popular retrieves approved courses ordered by enrollment, highest first.
func (r *MongoCourseRepo) Popular(limit int64) ([]models.Course, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled", Value: -1}}).
		SetLimit(limit)
	return r.find(bson.M{"status": models.CourseStatusApproved}, opts)
}

func (r *MongoCourseRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Course, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	for cursor.Next(ctx) {
		var course models.Course
		if err := cursor.Decode(&course); err != nil {
			return nil, fmt.Errorf("failed to decode course: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Update applies a partial update to the course matched by id.
func (r *MongoCourseRepo) Update(id primitive.ObjectID, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", id.Hex(), err)
	}
	return nil
}

// SetStatus replaces the approval state. No terminal-state guard: approve
// and deny may overwrite each other.
func (r *MongoCourseRepo) SetStatus(id primitive.ObjectID, status string) error {
	return r.Update(id, bson.M{"status": status})
}

// SetFeedback replaces the admin feedback text.
func (r *MongoCourseRepo) SetFeedback(id primitive.ObjectID, feedback string) error {
	return r.Update(id, bson.M{"feedback": feedback})
}

// Delete removes a course document by id.
func (r *MongoCourseRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", id.Hex(), err)
	}
	return nil
}
