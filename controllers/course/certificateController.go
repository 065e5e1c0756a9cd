package controllers

import (
	"fmt"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func certificateService() *services.CertificateService {
	return services.NewCertificateService(database.Database.Db)
}

// GetCertificate returns the caller's certificate for a course
func GetCertificate(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	details, err := certificateService().Details(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", details)
}

// GetMyCertificates lists the caller's certificates, most recent first
func GetMyCertificates(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	certs, err := certificateService().ListByUser(user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
	}

	result := make([]CertificateWithCourse, len(certs))
	for i, cert := range certs {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{Certificate: cert, CourseTitle: course.Title}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate is the public lookup by certificate number
func VerifyCertificate(c *fiber.Ctx) error {
	number := c.Locals("certificateNumber").(string)

	details, err := certificateService().Verify(number)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", details)
}

// DownloadCertificate renders the caller's certificate as a PDF
func DownloadCertificate(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	details, err := certificateService().Details(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	pdfBytes, err := utils.RenderCertificatePdf(details)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", details.Certificate.CertificateNumber))
	return c.Send(pdfBytes)
}
