package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CourseSummary is a list item enriched with rating data
type CourseSummary struct {
	courseModels.Course
	InstructorName string   `json:"instructor_name"`
	AverageRating  *float64 `json:"average_rating"`
	ReviewCount    int64    `json:"review_count"`
}

// SectionWithLessons nests lessons under their section for the detail view
type SectionWithLessons struct {
	courseModels.Section
	Lessons []courseModels.Lesson `json:"lessons"`
}

// GetAllCourses lists published courses with optional filters
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidator.ListQuery)
	if !ok {
		reqData = &courseValidator.ListQuery{Page: 1, Limit: 10}
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND status = ?", false, courseModels.StatusPublished)

	if reqData.CategoryID > 0 {
		db = db.Where("category_id = ?", reqData.CategoryID)
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Search != "" {
		db = db.Where("title ILIKE ?", "%"+reqData.Search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	reviewSvc := services.NewReviewService(database.Database.Db)

	result := make([]CourseSummary, len(courses))
	for i, course := range courses {
		var instructor models.User
		database.Database.Db.Where("id = ?", course.InstructorID).First(&instructor)

		avg, _ := reviewSvc.AverageRating(course.ID)
		var count int64
		database.Database.Db.Model(&models.Review{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)

		result[i] = CourseSummary{
			Course:         course,
			InstructorName: instructor.Name,
			AverageRating:  avg,
			ReviewCount:    count,
		}
	}

	response := fiber.Map{
		"courses": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a published course with its sections and lessons.
// Payload URLs of non-free lessons are withheld until the caller enrolls.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?",
		courseID, false, courseModels.StatusPublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	database.Database.Db.Where("id = ?", course.InstructorID).First(&instructor)

	enrollSvc := services.NewEnrollmentService(database.Database.Db, nil)
	isEnrolled, _ := enrollSvc.IsEnrolled(userID, courseID)

	var sections []courseModels.Section
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections)

	result := make([]SectionWithLessons, len(sections))
	for i, section := range sections {
		var lessons []courseModels.Lesson
		database.Database.Db.Where("section_id = ? AND is_deleted = ?", section.ID, false).
			Order("order_index asc").Find(&lessons)

		if !isEnrolled {
			for j := range lessons {
				if !lessons[j].IsFree {
					lessons[j].VideoURL = ""
					lessons[j].FileURL = ""
					lessons[j].TextContent = ""
				}
			}
		}
		result[i] = SectionWithLessons{Section: section, Lessons: lessons}
	}

	reviewSvc := services.NewReviewService(database.Database.Db)
	avg, _ := reviewSvc.AverageRating(courseID)
	var reviewCount int64
	database.Database.Db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&reviewCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":          course,
		"instructor_name": instructor.Name,
		"sections":        result,
		"is_enrolled":     isEnrolled,
		"average_rating":  avg,
		"review_count":    reviewCount,
	})
}

// GetCategories lists all categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
