package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up course authoring routes for instructors.
// Admins pass the role gate too so they can manage any course.
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor/course",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
	)

	instructorGroup.Post("/", validators.CourseBody(), controllers.CreateCourse)
	instructorGroup.Get("/list", controllers.GetInstructorCourses)
	instructorGroup.Patch("/:id", validators.CourseID(), validators.CourseBody(), controllers.UpdateCourse)
	instructorGroup.Patch("/:id/publish", validators.CourseID(), controllers.PublishCourse)
	instructorGroup.Patch("/:id/archive", validators.CourseID(), controllers.ArchiveCourse)
	instructorGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)

	// Sections. The reorder route must be registered before the
	// parameterized section routes so "reorder" is not read as an ID.
	instructorGroup.Post("/:id/section", validators.CourseID(), validators.SectionBody(), controllers.CreateSection)
	instructorGroup.Patch("/:id/section/reorder", validators.CourseID(), validators.ReorderBody(), controllers.ReorderSections)
	instructorGroup.Patch("/:id/section/:section_id", validators.CourseID(), validators.SectionID(), validators.SectionBody(), controllers.UpdateSection)
	instructorGroup.Delete("/:id/section/:section_id", validators.CourseID(), validators.SectionID(), controllers.DeleteSection)

	// Lessons
	instructorGroup.Post("/:id/section/:section_id/lesson", validators.CourseID(), validators.SectionID(), validators.LessonBody(), controllers.CreateLesson)
	instructorGroup.Patch("/:id/section/:section_id/lesson/reorder", validators.CourseID(), validators.SectionID(), validators.ReorderBody(), controllers.ReorderLessons)
	instructorGroup.Patch("/:id/lesson/:lesson_id", validators.CourseID(), validators.LessonID(), validators.LessonBody(), controllers.UpdateLesson)
	instructorGroup.Delete("/:id/lesson/:lesson_id", validators.CourseID(), validators.LessonID(), controllers.DeleteLesson)
}
