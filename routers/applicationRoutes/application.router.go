package applicationRoutes

import (
	applicationController "lms/controllers/application"
	"lms/middleware"
	"lms/models"
	applicationValidator "lms/validators/application"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes sets up the instructor application and the
// suspension appeal workflows for the applicant side.
func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/application", middleware.JWTMiddleware)

	applicationGroup.Post("/instructor", middleware.RequireRole(models.RoleStudent), applicationValidator.ApplicationBody(), applicationController.SubmitApplication)
	applicationGroup.Get("/instructor/mine", middleware.RequireRole(), applicationController.GetMyApplications)

	// Appeals are filed by suspended accounts, so the active-account
	// check is skipped on this group.
	appealGroup := app.Group("/appeal", middleware.JWTMiddleware, middleware.RequireSuspended)
	appealGroup.Post("/", applicationValidator.AppealBody(), applicationController.SubmitAppeal)
	appealGroup.Get("/mine", applicationController.GetMyAppeals)
}
