package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the validated course create/update body
type CourseRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	CategoryID  uint    `json:"category_id" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Level       string  `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Language    string  `json:"language" validate:"omitempty,min=2,max=8"`
	Thumbnail   string  `json:"thumbnail_url" validate:"omitempty,url"`
}

// SectionRequest is the validated section create/update body
type SectionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// LessonRequest is the validated lesson create/update body
type LessonRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Type            string `json:"type" validate:"required,oneof=VIDEO PDF QUIZ TEXT"`
	IsFree          bool   `json:"is_free"`
	VideoURL        string `json:"video_url" validate:"omitempty,url"`
	FileURL         string `json:"file_url" validate:"omitempty,url"`
	TextContent     string `json:"text_content"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
}

// ReorderRequest is the validated reorder body: ids in the desired order
type ReorderRequest struct {
	OrderedIDs []uint `json:"ordered_ids" validate:"required,min=1"`
}

// ListQuery is the validated course list query
type ListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	CategoryID uint   `query:"category_id"`
	Level      string `query:"level"`
	Search     string `query:"search"`
}

// paramID validates an integer path parameter and stores it in locals
func paramID(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing "+param+" parameter!", nil)
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
		}
		c.Locals(localKey, uint(id))
		return c.Next()
	}
}

func CourseID() fiber.Handler  { return paramID("id", "courseID") }
func SectionID() fiber.Handler { return paramID("section_id", "sectionID") }
func LessonID() fiber.Handler  { return paramID("lesson_id", "lessonID") }

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func SectionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func LessonBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func ReorderBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListQuery{Page: 1, Limit: 10}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 10
		}
		c.Locals("validatedCourseList", reqData)
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
