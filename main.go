// File: crownart/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crownart/config"
	"crownart/database"
	bookingRepoPkg "crownart/database/repository/booking"
	courseRepoPkg "crownart/database/repository/course"
	paymentRepoPkg "crownart/database/repository/payment"
	userRepoPkg "crownart/database/repository/user"
	"crownart/handlers"
	"crownart/middleware"
	"crownart/models"
	"crownart/routes"
	"crownart/services/booking"
	"crownart/services/course"
	"crownart/services/payment"
	"crownart/services/user"
	"crownart/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
		}
	}()
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	stripe.Key = config.AppConfig.StripeSecretKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	courseRepo := courseRepoPkg.NewMongoCourseRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	courseService := &course.DefaultCourseService{Repo: courseRepo, Cache: utils.GetCacheClient()}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}
	paymentService := &payment.DefaultPaymentService{Repo: paymentRepo, Courses: courseRepo}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(courseService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		IssueToken: handlers.IssueTokenHandler,

		RegisterUser:            userHandler.RegisterUserHandler,
		GetAllUsers:             userHandler.GetAllUsersHandler,
		GetUserByEmail:          userHandler.GetUserByEmailHandler,
		CheckAdmin:              userHandler.CheckAdminHandler,
		CheckInstructor:         userHandler.CheckInstructorHandler,
		GetInstructors:          userHandler.GetInstructorsHandler,
		MakeAdmin:               userHandler.SetRoleHandler(models.RoleAdmin),
		MakeInstructor:          userHandler.SetRoleHandler(models.RoleInstructor),
		MakeStudent:             userHandler.SetRoleHandler(models.RoleStudent),
		UpdateInstructorProfile: userHandler.UpdateInstructorProfileHandler,

		GetCourses:           courseHandler.GetCoursesHandler,
		GetAllCourses:        courseHandler.GetAllCoursesHandler,
		GetPopularCourses:    courseHandler.GetPopularCoursesHandler,
		GetCourse:            courseHandler.GetCourseHandler,
		GetInstructorCourses: courseHandler.GetInstructorCoursesHandler,
		CreateCourse:         courseHandler.CreateCourseHandler,
		UpdateCourse:         courseHandler.UpdateCourseHandler,
		DeleteCourse:         courseHandler.DeleteCourseHandler,
		SetCourseFeedback:    courseHandler.SetFeedbackHandler,
		ApproveCourse:        courseHandler.ApproveCourseHandler,
		DenyCourse:           courseHandler.DenyCourseHandler,

		ListBookings:  bookingHandler.ListBookingsHandler,
		AddBooking:    bookingHandler.AddBookingHandler,
		DeleteBooking: bookingHandler.DeleteBookingHandler,

		CreatePaymentIntent: paymentHandler.CreateIntentHandler,
		CapturePayment:      paymentHandler.CapturePaymentHandler,
		PaymentHistory:      paymentHandler.PaymentHistoryHandler,
		EnrolledCourses:     paymentHandler.EnrolledCoursesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health probe for /health.
	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, client, utils.GetCacheClient(), 30*time.Second)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Crown Art server starting on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
