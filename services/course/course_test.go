package course

import (
	"testing"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockRepo implements courseRepo.Repository.
type mockRepo struct {
	CreateFunc  func(course *models.Course) (primitive.ObjectID, error)
	GetByIDFunc func(id primitive.ObjectID) (*models.Course, error)
	PopularFunc func(limit int64) ([]models.Course, error)
	UpdateFunc  func(id primitive.ObjectID, fields bson.M) error
	Statuses    map[primitive.ObjectID]string
}

func (m *mockRepo) Create(course *models.Course) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(course)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockRepo) GetByID(id primitive.ObjectID) (*models.Course, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *mockRepo) GetByIDs(ids []primitive.ObjectID) ([]models.Course, error)  { return nil, nil }
func (m *mockRepo) GetByStatus(status string) ([]models.Course, error)          { return nil, nil }
func (m *mockRepo) GetByInstructor(email string) ([]models.Course, error)       { return nil, nil }
func (m *mockRepo) GetAll() ([]models.Course, error)                            { return nil, nil }

func (m *mockRepo) Popular(limit int64) ([]models.Course, error) {
	if m.PopularFunc != nil {
		return m.PopularFunc(limit)
	}
	return nil, nil
}

func (m *mockRepo) Update(id primitive.ObjectID, fields bson.M) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, fields)
	}
	return nil
}

func (m *mockRepo) SetStatus(id primitive.ObjectID, status string) error {
	if m.Statuses == nil {
		m.Statuses = make(map[primitive.ObjectID]string)
	}
	m.Statuses[id] = status
	return nil
}

func (m *mockRepo) SetFeedback(id primitive.ObjectID, feedback string) error { return nil }
func (m *mockRepo) Delete(id primitive.ObjectID) error                       { return nil }

func TestCreateForcesPendingState(t *testing.T) {
	var inserted *models.Course
	repo := &mockRepo{CreateFunc: func(course *models.Course) (primitive.ObjectID, error) {
		inserted = course
		return primitive.NewObjectID(), nil
	}}
	svc := &DefaultCourseService{Repo: repo}

	_, err := svc.Create(&models.Course{
		Name:     "Watercolor",
		Status:   models.CourseStatusApproved,
		Enrolled: 42,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inserted.Status != models.CourseStatusPending {
		t.Errorf("status = %q, want pending", inserted.Status)
	}
	if inserted.Enrolled != 0 {
		t.Errorf("enrolled = %d, want 0", inserted.Enrolled)
	}
}

func TestPopularAsksForSix(t *testing.T) {
	var gotLimit int64
	repo := &mockRepo{PopularFunc: func(limit int64) ([]models.Course, error) {
		gotLimit = limit
		return []models.Course{{Name: "a"}}, nil
	}}
	svc := &DefaultCourseService{Repo: repo}

	courses, err := svc.Popular()
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if gotLimit != 6 {
		t.Errorf("limit = %d, want 6", gotLimit)
	}
	if len(courses) != 1 {
		t.Errorf("len(courses) = %d, want 1", len(courses))
	}
}

func TestUpdateRejectsForeignInstructor(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockRepo{GetByIDFunc: func(primitive.ObjectID) (*models.Course, error) {
		return &models.Course{ID: id, InstructorEmail: "owner@example.com"}, nil
	}}
	svc := &DefaultCourseService{Repo: repo}

	err := svc.Update(id, models.CourseUpdate{Name: "x"}, "intruder@example.com")
	if err != ErrNotOwner {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
}

func TestUpdateWhitelistExcludesStatus(t *testing.T) {
	id := primitive.NewObjectID()
	var gotFields bson.M
	repo := &mockRepo{
		GetByIDFunc: func(primitive.ObjectID) (*models.Course, error) {
			return &models.Course{ID: id, InstructorEmail: "owner@example.com"}, nil
		},
		UpdateFunc: func(_ primitive.ObjectID, fields bson.M) error {
			gotFields = fields
			return nil
		},
	}
	svc := &DefaultCourseService{Repo: repo}

	if err := svc.Update(id, models.CourseUpdate{Name: "x", Seats: 12}, "owner@example.com"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for _, key := range []string{"status", "enrolled", "feedback", "instructorEmail"} {
		if _, ok := gotFields[key]; ok {
			t.Errorf("field %q must not be writable via instructor update", key)
		}
	}
	if gotFields["seats"] != 12 {
		t.Errorf("seats = %v, want 12", gotFields["seats"])
	}
}

// A vanished course is a silent no-op, matching the catalog's unconditional
// update contract.
func TestUpdateMissingCourseIsNoOp(t *testing.T) {
	updateCalls := 0
	repo := &mockRepo{UpdateFunc: func(primitive.ObjectID, bson.M) error {
		updateCalls++
		return nil
	}}
	svc := &DefaultCourseService{Repo: repo}

	if err := svc.Update(primitive.NewObjectID(), models.CourseUpdate{}, "anyone@example.com"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updateCalls != 0 {
		t.Errorf("Update called %d times for missing course, want 0", updateCalls)
	}
}

// Approve and deny are plain sets; either may overwrite the other.
func TestApproveDenyOscillation(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &mockRepo{}
	svc := &DefaultCourseService{Repo: repo}

	if err := svc.Approve(id); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if repo.Statuses[id] != models.CourseStatusApproved {
		t.Errorf("status = %q, want approved", repo.Statuses[id])
	}
	if err := svc.Deny(id); err != nil {
		t.Fatalf("Deny: %v", err)
	}
	if repo.Statuses[id] != models.CourseStatusDenied {
		t.Errorf("status = %q, want denied after approve", repo.Statuses[id])
	}
}
