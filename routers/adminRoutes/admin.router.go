package adminRoutes

import (
	adminController "lms/controllers/admin"
	"lms/middleware"
	"lms/models"
	adminValidator "lms/validators/admin"
	applicationValidator "lms/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// User management
	adminGroup.Get("/users", adminValidator.UserList(), adminController.ListUsers)
	adminGroup.Patch("/user/:user_id/suspend", adminValidator.UserID(), adminController.SuspendUser)
	adminGroup.Patch("/user/:user_id/reactivate", adminValidator.UserID(), adminController.ReactivateUser)

	// Instructor applications
	adminGroup.Get("/applications", adminController.ListApplications)
	adminGroup.Patch("/application/:id/review", applicationValidator.RecordID(), applicationValidator.ReviewDecisionBody(), adminController.ReviewApplication)

	// Suspension appeals
	adminGroup.Get("/appeals", adminController.ListAppeals)
	adminGroup.Patch("/appeal/:id/review", applicationValidator.RecordID(), applicationValidator.ReviewDecisionBody(), adminController.ReviewAppeal)

	// Categories
	adminGroup.Post("/category", adminValidator.CategoryBody(), adminController.CreateCategory)
	adminGroup.Patch("/category/:category_id", adminValidator.CategoryID(), adminValidator.CategoryBody(), adminController.UpdateCategory)
	adminGroup.Delete("/category/:category_id", adminValidator.CategoryID(), adminController.DeleteCategory)

	// Dashboard
	adminGroup.Get("/dashboard", adminController.DashboardStats)
}
