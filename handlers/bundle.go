package handlers

import (
	userRepo "crownart/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every route handler plus the user repository the
// role guard reads from.
type HandlerBundle struct {
	UserRepo userRepo.Repository

	// Credential issuer.
	IssueToken gin.HandlerFunc

	// User endpoints.
	RegisterUser            gin.HandlerFunc
	GetAllUsers             gin.HandlerFunc
	GetUserByEmail          gin.HandlerFunc
	CheckAdmin              gin.HandlerFunc
	CheckInstructor         gin.HandlerFunc
	GetInstructors          gin.HandlerFunc
	MakeAdmin               gin.HandlerFunc
	MakeInstructor          gin.HandlerFunc
	MakeStudent             gin.HandlerFunc
	UpdateInstructorProfile gin.HandlerFunc

	// Catalog endpoints.
	GetCourses           gin.HandlerFunc
	GetAllCourses        gin.HandlerFunc
	GetPopularCourses    gin.HandlerFunc
	GetCourse            gin.HandlerFunc
	GetInstructorCourses gin.HandlerFunc
	CreateCourse         gin.HandlerFunc
	UpdateCourse         gin.HandlerFunc
	DeleteCourse         gin.HandlerFunc
	SetCourseFeedback    gin.HandlerFunc
	ApproveCourse        gin.HandlerFunc
	DenyCourse           gin.HandlerFunc

	// Cart endpoints.
	ListBookings  gin.HandlerFunc
	AddBooking    gin.HandlerFunc
	DeleteBooking gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	CapturePayment      gin.HandlerFunc
	PaymentHistory      gin.HandlerFunc
	EnrolledCourses     gin.HandlerFunc
}
