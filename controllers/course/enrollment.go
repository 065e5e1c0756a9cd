package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func enrollmentService() *services.EnrollmentService {
	return services.NewEnrollmentService(database.Database.Db, utils.NewGatewayClient())
}

// InitiatePayment hands out a payment reference for a priced course
func InitiatePayment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	intent, err := enrollmentService().InitiatePayment(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initiated successfully!", intent)
}

// CompleteEnrollment finishes a paid enrollment with the gateway reference
func CompleteEnrollment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedCompleteEnrollment").(*courseValidator.CompleteEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := enrollmentService().CompleteEnrollment(user.ID, courseID, reqData.Reference)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", courseID).First(&course)
	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// EnrollFree enrolls the user in a free course
func EnrollFree(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	enrollment, err := enrollmentService().EnrollFree(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", courseID).First(&course)
	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// CheckEnrollment reports whether the caller is enrolled in the course
func CheckEnrollment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	enrolled, err := enrollmentService().IsEnrolled(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
		"is_enrolled": enrolled,
	})
}

// GetEnrollment returns the caller's enrollment for a course with live progress
func GetEnrollment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	enrollment, err := enrollmentService().GetEnrollment(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

// GetMyEnrollments lists the caller's enrollments with course info
func GetMyEnrollments(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	enrollments, err := enrollmentService().ListUserEnrollments(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle     string `json:"course_title"`
		CourseThumbnail string `json:"course_thumbnail"`
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:      e,
			CourseTitle:     course.Title,
			CourseThumbnail: course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
