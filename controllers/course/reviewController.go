package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func reviewService() *services.ReviewService {
	return services.NewReviewService(database.Database.Db)
}

// SubmitReview creates or overwrites the caller's review for a course
func SubmitReview(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedReview").(*courseValidator.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review, err := reviewService().Upsert(user.ID, courseID, reqData.Rating, reqData.Comment)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// GetMyReview returns the caller's own review for a course
func GetMyReview(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	courseID := c.Locals("courseID").(uint)

	review, err := reviewService().GetUserReview(user.ID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully!", review)
}

// GetCourseReviews lists a course's reviews with reviewer names, newest first
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reviews, err := reviewService().ListByCourse(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	type ReviewWithUser struct {
		models.Review
		UserName string `json:"user_name"`
	}

	result := make([]ReviewWithUser, len(reviews))
	for i, review := range reviews {
		var reviewer models.User
		database.Database.Db.Select("id, name").Where("id = ?", review.UserID).First(&reviewer)
		result[i] = ReviewWithUser{Review: review, UserName: reviewer.Name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": result,
		"total":   len(result),
	})
}

// GetCourseRating returns the course's average rating, null when unreviewed
func GetCourseRating(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	avg, err := reviewService().AverageRating(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var count int64
	database.Database.Db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating fetched successfully!", fiber.Map{
		"average_rating": avg,
		"review_count":   count,
	})
}

// DeleteReview removes the caller's own review
func DeleteReview(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	reviewID := c.Locals("reviewID").(uint)

	if err := reviewService().Delete(reviewID, user.ID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
