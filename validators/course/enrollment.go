package courseValidator

import (
	"lms/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CompleteEnrollmentRequest carries the externally supplied payment reference
type CompleteEnrollmentRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// ReviewRequest is the validated review upsert body
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

func EnrollmentID() fiber.Handler { return paramID("enrollment_id", "enrollmentID") }
func ReviewID() fiber.Handler     { return paramID("review_id", "reviewID") }

func CompleteEnrollmentBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteEnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Reference = strings.TrimSpace(reqData.Reference)
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCompleteEnrollment", reqData)
		return c.Next()
	}
}

func ReviewBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// CertificateNumber validates the public verification path parameter. Shape
// is not checked beyond presence so wrong-format and absent numbers are
// indistinguishable to the caller.
func CertificateNumber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := strings.TrimSpace(c.Params("number"))
		if number == "" {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		c.Locals("certificateNumber", number)
		return c.Next()
	}
}
