package applicationController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	applicationValidator "lms/validators/application"

	"github.com/gofiber/fiber/v2"
)

func workflowService() *services.WorkflowService {
	return services.NewWorkflowService(database.Database.Db)
}

// SubmitApplication files an instructor application for the calling student
func SubmitApplication(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedApplication").(*applicationValidator.ApplicationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	application, err := workflowService().SubmitApplication(user.ID, reqData.Motivation, reqData.Expertise)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyApplications lists the caller's instructor applications
func GetMyApplications(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	applications, err := workflowService().ListUserApplications(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// SubmitAppeal files a suspension appeal for the calling suspended user
func SubmitAppeal(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	reqData, ok := c.Locals("validatedAppeal").(*applicationValidator.AppealRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	appeal, err := workflowService().SubmitAppeal(user.ID, reqData.Reason)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Appeal submitted successfully!", appeal)
}

// GetMyAppeals lists the caller's suspension appeals
func GetMyAppeals(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	appeals, err := workflowService().ListUserAppeals(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appeals fetched successfully!", appeals)
}
