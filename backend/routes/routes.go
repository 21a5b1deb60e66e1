package routes

import (
	"vidyashiksha/backend/config"
	"vidyashiksha/backend/controllers"
	"vidyashiksha/backend/middleware"
	"vidyashiksha/backend/services"
	"vidyashiksha/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st *store.Store, gateway services.PaymentGateway, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/signup", authController.Signup)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	app.Get("/api/auth/me", authMiddleware, authController.GetProfile)

	// Public catalog routes
	coursesController := controllers.NewCoursesController(st, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/subjects", coursesController.GetSubjects)
	app.Get("/api/courses/levels", coursesController.GetClassLevels)
	app.Get("/api/courses/:id", coursesController.GetCourseDetails)
	app.Get("/api/batches/:id", coursesController.GetBatchDetails)
	app.Get("/api/instructors", coursesController.GetInstructors)

	// Learner routes
	learningController := controllers.NewLearningController(st, cfg)
	learner := app.Group("/api", authMiddleware)
	learner.Get("/batches/:id/classes", learningController.GetBatchClasses)
	learner.Get("/classes/:id", learningController.GetClassDetails)
	learner.Get("/activities/:id/reading", learningController.GetReadingComprehension)
	learner.Get("/activities/:id/assessment", learningController.GetAssessment)
	learner.Post("/activities/:id/submit", learningController.SubmitAssessment)
	learner.Get("/enrollments", learningController.GetMyEnrollments)
	learner.Get("/orders", learningController.GetMyOrders)

	// Checkout routes
	checkoutController := controllers.NewCheckoutController(st, gateway, cfg)
	learner.Post("/checkout/:batchId", checkoutController.Checkout)
	learner.Put("/enrollment/pending", checkoutController.SetPendingEnrollment)
	learner.Get("/enrollment/pending", checkoutController.GetPendingEnrollment)
	learner.Delete("/enrollment/pending", checkoutController.ClearPendingEnrollment)

	// Admin routes
	adminController := controllers.NewAdminController(st, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/courses", adminController.CreateCourse)
	admin.Put("/courses/:id", adminController.UpdateCourse)
	admin.Delete("/courses/:id", adminController.DeleteCourse)
	admin.Post("/batches", adminController.CreateBatch)
	admin.Put("/batches/:id", adminController.UpdateBatch)
	admin.Delete("/batches/:id", adminController.DeleteBatch)
	admin.Get("/enrollments", adminController.GetEnrollments)
	admin.Post("/enrollments", adminController.EnrollStudent)
	admin.Get("/orders", adminController.GetOrders)
	admin.Get("/students", adminController.GetStudents)
	admin.Get("/stats", adminController.GetStats)
}
