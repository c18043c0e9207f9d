package user

import (
	"fmt"

	userRepo "crownart/database/repository/user"
	"crownart/models"
	"crownart/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultUserService implements Service.
type DefaultUserService struct {
	Repo userRepo.Repository
}

// Register inserts the user unless the email already exists. Role defaults
// to student; callers cannot grant themselves anything else here.
func (s *DefaultUserService) Register(user *models.User) (bool, primitive.ObjectID, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return false, primitive.NilObjectID, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Debug("Register: user already exists", zap.String("email", user.Email))
		return false, existing.ID, nil
	}

	user.Role = models.RoleStudent
	id, err := s.Repo.Create(user)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race with a concurrent first sign-in of the same
		// email; the unique index kept one record.
		if winner, lookupErr := s.Repo.GetByEmail(user.Email); lookupErr == nil && winner != nil {
			return false, winner.ID, nil
		}
		return false, primitive.NilObjectID, nil
	}
	if err != nil {
		return false, primitive.NilObjectID, err
	}
	logger.Info("Registered user", zap.String("email", user.Email))
	return true, id, nil
}

func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultUserService) Instructors() ([]models.User, error) {
	return s.Repo.GetByRole(models.RoleInstructor)
}

// HasRole reports whether the stored user holds the given role. A missing
// user simply does not hold it.
func (s *DefaultUserService) HasRole(email, role string) (bool, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == role, nil
}

func (s *DefaultUserService) SetRole(id primitive.ObjectID, role string) error {
	logger := utils.GetLogger()
	logger.Info("Setting role", zap.String("id", id.Hex()), zap.String("role", role))
	return s.Repo.SetRole(id, role)
}

// UpdateInstructorProfile applies the profile whitelist to the record
// matched by email. Unconditional: a missing record is not an error,
// matching the catalog's update contract.
func (s *DefaultUserService) UpdateInstructorProfile(email string, profile models.InstructorProfile) error {
	fields := bson.M{
		"name":          profile.Name,
		"image":         profile.Image,
		"bio":           profile.Bio,
		"qualification": profile.Qualification,
		"experience":    profile.Experience,
		"teachingArea":  profile.TeachingArea,
	}
	return s.Repo.UpdateProfile(email, fields)
}
