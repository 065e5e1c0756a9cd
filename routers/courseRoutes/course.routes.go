package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and all learner-facing routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing. OptionalJWT lets logged-in users see their
	// enrollment-aware view of a course while keeping the routes public.
	courseGroup.Get("/list", middleware.OptionalJWT, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/categories", controllers.GetCategories)
	courseGroup.Get("/:id", middleware.OptionalJWT, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment and payment
	courseGroup.Post("/:id/payment/initiate", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.InitiatePayment)
	courseGroup.Post("/:id/enroll/complete", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), validators.CompleteEnrollmentBody(), controllers.CompleteEnrollment)
	courseGroup.Post("/:id/enroll/free", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.EnrollFree)
	courseGroup.Get("/:id/enrollment/status", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.CheckEnrollment)
	courseGroup.Get("/:id/enrollment", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.GetEnrollment)

	// Reviews (reading is public, writing requires enrollment)
	courseGroup.Get("/:id/reviews", validators.CourseID(), controllers.GetCourseReviews)
	courseGroup.Get("/:id/rating", validators.CourseID(), controllers.GetCourseRating)
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), validators.ReviewBody(), controllers.SubmitReview)
	courseGroup.Get("/:id/review/me", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.GetMyReview)

	// Certificates for completed courses
	courseGroup.Get("/:id/certificate", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.GetCertificate)
	courseGroup.Get("/:id/certificate/download", middleware.JWTMiddleware, middleware.RequireRole(), validators.CourseID(), controllers.DownloadCertificate)

	// Lesson progress per enrollment
	enrollmentGroup := app.Group("/enrollment", middleware.JWTMiddleware, middleware.RequireRole())
	enrollmentGroup.Get("/:enrollment_id/progress", validators.EnrollmentID(), controllers.GetProgressList)
	enrollmentGroup.Get("/:enrollment_id/lesson/:lesson_id/progress", validators.EnrollmentID(), validators.LessonID(), controllers.GetProgress)
	enrollmentGroup.Post("/:enrollment_id/lesson/:lesson_id/complete", validators.EnrollmentID(), validators.LessonID(), controllers.MarkLessonCompleted)
	enrollmentGroup.Post("/:enrollment_id/lesson/:lesson_id/incomplete", validators.EnrollmentID(), validators.LessonID(), controllers.MarkLessonIncomplete)

	// Review removal by its author
	reviewGroup := app.Group("/review", middleware.JWTMiddleware, middleware.RequireRole())
	reviewGroup.Delete("/:review_id", validators.ReviewID(), controllers.DeleteReview)

	// Public certificate verification
	certificateGroup := app.Group("/certificate")
	certificateGroup.Get("/verify/:number", validators.CertificateNumber(), controllers.VerifyCertificate)
}
