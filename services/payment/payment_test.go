package payment

import (
	"testing"

	"crownart/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockLedger implements paymentRepo.Repository.
type mockLedger struct {
	CaptureFunc    func(payment *models.Payment, courseID, bookingID primitive.ObjectID) (*models.CaptureResult, error)
	GetByEmailFunc func(email string) ([]models.Payment, error)
}

func (m *mockLedger) Capture(p *models.Payment, courseID, bookingID primitive.ObjectID) (*models.CaptureResult, error) {
	if m.CaptureFunc != nil {
		return m.CaptureFunc(p, courseID, bookingID)
	}
	return &models.CaptureResult{TransactionID: p.TransactionID}, nil
}

func (m *mockLedger) GetByEmail(email string) ([]models.Payment, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, nil
}

// mockCatalog implements courseRepo.Repository; only GetByIDs matters here.
type mockCatalog struct {
	GetByIDsFunc func(ids []primitive.ObjectID) ([]models.Course, error)
}

func (m *mockCatalog) Create(course *models.Course) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (m *mockCatalog) GetByID(id primitive.ObjectID) (*models.Course, error) { return nil, nil }

func (m *mockCatalog) GetByIDs(ids []primitive.ObjectID) ([]models.Course, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ids)
	}
	return nil, nil
}

func (m *mockCatalog) GetByStatus(status string) ([]models.Course, error)    { return nil, nil }
func (m *mockCatalog) GetByInstructor(email string) ([]models.Course, error) { return nil, nil }
func (m *mockCatalog) GetAll() ([]models.Course, error)                      { return nil, nil }
func (m *mockCatalog) Popular(limit int64) ([]models.Course, error)          { return nil, nil }
func (m *mockCatalog) Update(id primitive.ObjectID, fields bson.M) error     { return nil }
func (m *mockCatalog) SetStatus(id primitive.ObjectID, status string) error  { return nil }
func (m *mockCatalog) SetFeedback(id primitive.ObjectID, fb string) error    { return nil }
func (m *mockCatalog) Delete(id primitive.ObjectID) error                    { return nil }

func TestCaptureFillsServerFields(t *testing.T) {
	var recorded *models.Payment
	ledger := &mockLedger{CaptureFunc: func(p *models.Payment, courseID, bookingID primitive.ObjectID) (*models.CaptureResult, error) {
		recorded = p
		return &models.CaptureResult{TransactionID: p.TransactionID, CoursesModified: 1}, nil
	}}
	svc := &DefaultPaymentService{Repo: ledger, Courses: &mockCatalog{}}

	courseID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()
	result, err := svc.Capture(CaptureRequest{
		Email:         "buyer@example.com",
		BookingItemID: courseID,
		BookedItemID:  bookingID,
		Amount:        49.99,
	})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if recorded.TransactionID == "" {
		t.Error("transaction id not filled by the server")
	}
	if recorded.Date.IsZero() {
		t.Error("payment date not filled by the server")
	}
	if recorded.BookingItemID != courseID.Hex() {
		t.Errorf("bookingItemId = %q, want %q", recorded.BookingItemID, courseID.Hex())
	}
	if result.TransactionID != recorded.TransactionID {
		t.Error("result transaction id does not match the recorded payment")
	}
}

func TestEnrolledCoursesDeduplicates(t *testing.T) {
	courseID := primitive.NewObjectID()
	ledger := &mockLedger{GetByEmailFunc: func(email string) ([]models.Payment, error) {
		return []models.Payment{
			{Email: email, BookingItemID: courseID.Hex()},
			{Email: email, BookingItemID: courseID.Hex()},
		}, nil
	}}
	var askedIDs []primitive.ObjectID
	catalog := &mockCatalog{GetByIDsFunc: func(ids []primitive.ObjectID) ([]models.Course, error) {
		askedIDs = ids
		return []models.Course{{ID: courseID}}, nil
	}}
	svc := &DefaultPaymentService{Repo: ledger, Courses: catalog}

	courses, err := svc.EnrolledCourses("buyer@example.com")
	if err != nil {
		t.Fatalf("EnrolledCourses: %v", err)
	}
	if len(askedIDs) != 1 {
		t.Errorf("asked for %d ids, want 1 after dedup", len(askedIDs))
	}
	if len(courses) != 1 {
		t.Errorf("len(courses) = %d, want 1", len(courses))
	}
}

func TestEnrolledCoursesEmptyLedger(t *testing.T) {
	svc := &DefaultPaymentService{Repo: &mockLedger{}, Courses: &mockCatalog{}}

	courses, err := svc.EnrolledCourses("nobody@example.com")
	if err != nil {
		t.Fatalf("EnrolledCourses: %v", err)
	}
	if courses != nil {
		t.Errorf("courses = %v, want empty", courses)
	}
}
