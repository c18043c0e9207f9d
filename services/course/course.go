package course

import (
	"context"
	"encoding/json"
	"time"

	courseRepo "crownart/database/repository/course"
	"crownart/models"
	"crownart/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	popularLimit    = 6
	popularCacheKey = "popularCourses"
	popularCacheTTL = 60 * time.Second
)

// DefaultCourseService implements Service. Cache may be nil, in which case
// the popular listing always hits the store.
type DefaultCourseService struct {
	Repo  courseRepo.Repository
	Cache *redis.Client
}

// Create publishes a course in the pending state with an empty enrollment,
// whatever the caller sent for those fields.
func (s *DefaultCourseService) Create(course *models.Course) (primitive.ObjectID, error) {
	course.Status = models.CourseStatusPending
	course.Enrolled = 0
	return s.Repo.Create(course)
}

// Approved lists the public catalog.
func (s *DefaultCourseService) Approved() ([]models.Course, error) {
	return s.Repo.GetByStatus(models.CourseStatusApproved)
}

// All lists the whole catalog, pending and denied included.
func (s *DefaultCourseService) All() ([]models.Course, error) {
	return s.Repo.GetAll()
}

// Popular lists the top approved courses by enrollment, cached briefly.
func (s *DefaultCourseService) Popular() ([]models.Course, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if cached, err := s.Cache.Get(ctx, popularCacheKey).Result(); err == nil {
			var courses []models.Course
			if err := json.Unmarshal([]byte(cached), &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.Repo.Popular(popularLimit)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if encoded, err := json.Marshal(courses); err == nil {
			if err := s.Cache.Set(ctx, popularCacheKey, encoded, popularCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache popular courses", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *DefaultCourseService) GetByID(id primitive.ObjectID) (*models.Course, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCourseService) ByInstructor(email string) ([]models.Course, error) {
	return s.Repo.GetByInstructor(email)
}

// Update applies the instructor whitelist after an ownership check. Editing
// a missing course is a silent no-op, matching the unconditional update
// contract of the rest of the catalog.
func (s *DefaultCourseService) Update(id primitive.ObjectID, update models.CourseUpdate, requesterEmail string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.InstructorEmail != requesterEmail {
		return ErrNotOwner
	}

	fields := bson.M{
		"name":        update.Name,
		"image":       update.Image,
		"price":       update.Price,
		"seats":       update.Seats,
		"description": update.Description,
	}
	return s.Repo.Update(id, fields)
}

func (s *DefaultCourseService) Delete(id primitive.ObjectID) error {
	return s.Repo.Delete(id)
}

func (s *DefaultCourseService) SetFeedback(id primitive.ObjectID, feedback string) error {
	return s.Repo.SetFeedback(id, feedback)
}

func (s *DefaultCourseService) Approve(id primitive.ObjectID) error {
	return s.Repo.SetStatus(id, models.CourseStatusApproved)
}

func (s *DefaultCourseService) Deny(id primitive.ObjectID) error {
	return s.Repo.SetStatus(id, models.CourseStatusDenied)
}
