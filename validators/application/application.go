package applicationValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ApplicationRequest is the validated instructor application body
type ApplicationRequest struct {
	Motivation string `json:"motivation" validate:"required,min=20,max=2000"`
	Expertise  string `json:"expertise" validate:"max=2000"`
}

// AppealRequest is the validated suspension appeal body
type AppealRequest struct {
	Reason string `json:"reason" validate:"required,min=20,max=2000"`
}

// ReviewDecisionRequest is the validated admin review body shared by both workflows
type ReviewDecisionRequest struct {
	Approve  bool   `json:"approve"`
	Response string `json:"response" validate:"max=2000"`
}

func ApplicationBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ApplicationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

func AppealBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AppealRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedAppeal", reqData)
		return c.Next()
	}
}

func ReviewDecisionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewDecisionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedReviewDecision", reqData)
		return c.Next()
	}
}

// RecordID validates the workflow record id path parameter
func RecordID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		c.Locals("recordID", uint(id))
		return c.Next()
	}
}

// fieldErrors flattens validator errors into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Failed validation: " + fe.Tag()
		}
		return errors
	}
	errors["request"] = err.Error()
	return errors
}
