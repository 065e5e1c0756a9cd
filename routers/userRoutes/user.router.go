package userRoutes

import (
	courseController "lms/controllers/course"
	userProfileController "lms/controllers/userControllers"
	"lms/middleware"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware, middleware.RequireRole())

	userGroup.Get("/profile", userProfileController.GetProfile)
	userGroup.Patch("/profile", userValidator.UpdateProfile(), userProfileController.UpdateProfile)
	userGroup.Put("/change/password", userValidator.ChangePassword(), userProfileController.ChangePassword)

	userGroup.Get("/enrollments", courseController.GetMyEnrollments)
	userGroup.Get("/certificates", courseController.GetMyCertificates)
}
