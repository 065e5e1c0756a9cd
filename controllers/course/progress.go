package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func progressService() *services.ProgressService {
	db := database.Database.Db
	return services.NewProgressService(db, services.NewCertificateService(db))
}

// GetProgressList lists all progress rows of an enrollment in lesson order
func GetProgressList(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	enrollmentID := c.Locals("enrollmentID").(uint)

	rows, err := progressService().ListByEnrollment(user.ID, enrollmentID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": rows,
		"total":    len(rows),
	})
}

// GetProgress returns a single lesson's progress row
func GetProgress(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	progress, err := progressService().Get(user.ID, enrollmentID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// MarkLessonCompleted marks a lesson as completed and recomputes the
// enrollment percentage. Reaching 100% mints the certificate.
func MarkLessonCompleted(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	progress, err := progressService().MarkCompleted(user.ID, enrollmentID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var enrollment courseModels.Enrollment
	database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment)

	if enrollment.Status == courseModels.EnrollmentStatusCompleted {
		var cert courseModels.Certificate
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
			user.ID, enrollment.CourseID, false).First(&cert).Error; err == nil {
			var course courseModels.Course
			database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)
			go utils.SendCertificateEmail(user.Email, user.Name, course.Title, cert.CertificateNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", fiber.Map{
		"progress":         progress,
		"progress_percent": enrollment.ProgressPercent,
		"status":           enrollment.Status,
	})
}

// MarkLessonIncomplete marks a lesson as not completed. The enrollment's
// completion timestamp is a high-water mark and stays set.
func MarkLessonIncomplete(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	progress, err := progressService().MarkIncomplete(user.ID, enrollmentID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var enrollment courseModels.Enrollment
	database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as incomplete!", fiber.Map{
		"progress":         progress,
		"progress_percent": enrollment.ProgressPercent,
		"status":           enrollment.Status,
	})
}
