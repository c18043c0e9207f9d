package routes

import (
	"net/http"
	"time"

	"crownart/handlers"
	"crownart/middleware"
	"crownart/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the user and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.AuthRequired()
	admin := middleware.RequireRole(hb.UserRepo, models.RoleAdmin)

	r.POST("/jwt", hb.IssueToken)
	r.POST("/users", hb.RegisterUser)
	r.GET("/users", auth, admin, hb.GetAllUsers)
	r.GET("/users/:email", auth, hb.GetUserByEmail)

	// Self-checks: the ownership guard aborts on mismatch before the lookup.
	r.GET("/users/admin/:email", auth, middleware.RequireSelfParam("email"), hb.CheckAdmin)
	r.GET("/users/instructor/:email", auth, middleware.RequireSelfParam("email"), hb.CheckInstructor)

	r.PATCH("/users/admin/:id", auth, admin, hb.MakeAdmin)
	r.PATCH("/users/instructor/:id", auth, admin, hb.MakeInstructor)
	r.PATCH("/users/student/:id", auth, admin, hb.MakeStudent)

	r.GET("/instructors", hb.GetInstructors)
	r.PUT("/instructor/:email", auth, middleware.RequireSelfParam("email"), hb.UpdateInstructorProfile)
}

// RegisterCourseRoutes registers the catalog endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.AuthRequired()
	admin := middleware.RequireRole(hb.UserRepo, models.RoleAdmin)
	instructor := middleware.RequireRole(hb.UserRepo, models.RoleInstructor)

	r.GET("/courses", hb.GetCourses)
	r.GET("/courses/admin", auth, admin, hb.GetAllCourses)
	r.GET("/popularCourses", hb.GetPopularCourses)
	r.GET("/courses/:id", hb.GetCourse)
	r.GET("/courses/instructor/:email", auth, middleware.RequireSelfParam("email"), hb.GetInstructorCourses)

	r.POST("/courses", auth, instructor, hb.CreateCourse)
	r.PUT("/courses/:id", auth, instructor, hb.UpdateCourse)
	r.DELETE("/courses/:id", auth, admin, hb.DeleteCourse)

	r.PUT("/courses/admin/feedback/:id", auth, admin, hb.SetCourseFeedback)
	r.PATCH("/courses/admin/approve/:id", auth, admin, hb.ApproveCourse)
	r.PATCH("/courses/admin/deny/:id", auth, admin, hb.DenyCourse)
}

// RegisterBookingRoutes registers the cart endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.AuthRequired()

	r.GET("/courseBookings", auth, middleware.RequireSelfQuery("email"), hb.ListBookings)
	r.POST("/courseBookings", auth, hb.AddBooking)
	r.DELETE("/courseBookings/:id", auth, hb.DeleteBooking)
}

// RegisterPaymentRoutes registers the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.AuthRequired()

	r.POST("/create-payment-intent", auth, hb.CreatePaymentIntent)
	r.POST("/payments", auth, hb.CapturePayment)
	r.GET("/payments/:email", auth, middleware.RequireSelfParam("email"), hb.PaymentHistory)
	r.GET("/enrolledCourses/:email", auth, middleware.RequireSelfParam("email"), hb.EnrolledCourses)
}

// RegisterHealthRoutes registers the liveness banner and health snapshot.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Crown Art Server is Running")
	})
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterUserRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
