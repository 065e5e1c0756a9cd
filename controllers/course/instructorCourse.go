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

// ownedCourse loads a course and checks the caller may manage it. Admins may
// manage any course, instructors only their own.
func ownedCourse(c *fiber.Ctx, courseID uint) (*courseModels.Course, *models.User, error) {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).
		First(&course).Error; err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != user.ID && user.Role != models.RoleAdmin && user.Role != models.RoleSuperAdmin {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}
	return &course, user, nil
}

// CreateCourse creates a new DRAFT course owned by the calling instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).
		First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: user.ID,
		CategoryID:   reqData.CategoryID,
		Price:        reqData.Price,
		Status:       courseModels.StatusDraft,
		ThumbnailURL: reqData.Thumbnail,
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Language != "" {
		course.Language = reqData.Language
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates an existing course's fields
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	course, _, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = reqData.Price
	if reqData.CategoryID > 0 {
		course.CategoryID = reqData.CategoryID
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Language != "" {
		course.Language = reqData.Language
	}
	if reqData.Thumbnail != "" {
		course.ThumbnailURL = reqData.Thumbnail
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// PublishCourse moves a DRAFT course to PUBLISHED
func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	course, _, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	if course.Status == courseModels.StatusPublished {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already published!", nil)
	}

	// A course needs at least one lesson before it can be published
	var lessonCount int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&lessonCount)
	if lessonCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Add at least one lesson before publishing!", nil)
	}

	if err := database.Database.Db.Model(course).Update("status", courseModels.StatusPublished).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// ArchiveCourse moves a course to ARCHIVED, hiding it from enrollment
func ArchiveCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	course, _, err := ownedCourse(c, courseID)
	if err != nil {
		return err
	}

	if err := database.Database.Db.Model(course).Update("status", courseModels.StatusArchived).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully!", course)
}

// DeleteCourse soft-deletes a course and cascades to sections and lessons
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	catalog := services.NewCatalogService(database.Database.Db)
	if err := catalog.DeleteCourse(courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetInstructorCourses lists the calling instructor's courses with enrollment counts
func GetInstructorCourses(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithEnrollments struct {
		courseModels.Course
		EnrollmentCount int64 `json:"enrollment_count"`
	}

	result := make([]CourseWithEnrollments, len(courses))
	for i, course := range courses {
		var count int64
		database.Database.Db.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)
		result[i] = CourseWithEnrollments{Course: course, EnrollmentCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// CreateSection adds a section at the end of a course's section list
func CreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedSection").(*courseValidator.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var maxIndex int64
	database.Database.Db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&maxIndex)

	section := courseModels.Section{
		CourseID:   courseID,
		Title:      reqData.Title,
		OrderIndex: int(maxIndex),
	}
	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// UpdateSection renames a section
func UpdateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedSection").(*courseValidator.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?",
		sectionID, courseID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.Title = reqData.Title
	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// DeleteSection soft-deletes a section and cascades to its lessons
func DeleteSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?",
		sectionID, courseID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)
	if err := catalog.DeleteSection(sectionID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// ReorderSections rewrites the section order of a course
func ReorderSections(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)
	if err := catalog.ReorderSections(courseID, reqData.OrderedIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections reordered successfully!", nil)
}

// CreateLesson adds a lesson at the end of a section's lesson list
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?",
		sectionID, courseID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var maxIndex int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("section_id = ? AND is_deleted = ?", sectionID, false).Count(&maxIndex)

	lesson := courseModels.Lesson{
		SectionID:       sectionID,
		CourseID:        courseID,
		Title:           reqData.Title,
		Type:            reqData.Type,
		OrderIndex:      int(maxIndex),
		IsFree:          reqData.IsFree,
		VideoURL:        reqData.VideoURL,
		FileURL:         reqData.FileURL,
		TextContent:     reqData.TextContent,
		DurationMinutes: reqData.DurationMinutes,
	}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson updates a lesson's fields
func UpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?",
		lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.Title = reqData.Title
	lesson.Type = reqData.Type
	lesson.IsFree = reqData.IsFree
	lesson.VideoURL = reqData.VideoURL
	lesson.FileURL = reqData.FileURL
	lesson.TextContent = reqData.TextContent
	lesson.DurationMinutes = reqData.DurationMinutes

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft-deletes a single lesson
func DeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?",
		lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := database.Database.Db.Model(&lesson).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// ReorderLessons rewrites the lesson order within a section
func ReorderLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	sectionID := c.Locals("sectionID").(uint)
	if _, _, err := ownedCourse(c, courseID); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)
	if err := catalog.ReorderLessons(sectionID, reqData.OrderedIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons reordered successfully!", nil)
}
