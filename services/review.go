package services

import (
	"errors"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

const maxCommentLength = 1000

// ReviewService owns course reviews and the derived average rating.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Upsert creates the caller's review for a course or overwrites the existing
// one. Only enrolled users may review.
func (s *ReviewService) Upsert(userID, courseID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, Validation("Rating must be between 1 and 5!")
	}
	if len(comment) > maxCommentLength {
		return nil, Validation("Comment must be at most 1000 characters!")
	}

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return nil, Forbidden("Enroll in the course before reviewing it!")
	}

	// The lookup deliberately includes soft-deleted rows: they still occupy
	// the (user, course) unique index, so a fresh insert would conflict. A
	// resubmission after delete resurrects the row instead.
	var review models.Review
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&review).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		review = models.Review{UserID: userID, CourseID: courseID, Rating: rating, Comment: comment}
		if err := s.db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, Conflict("Review already exists for this course!")
			}
			return nil, err
		}
		return &review, nil
	}

	review.Rating = rating
	review.Comment = comment
	review.IsDeleted = false
	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetUserReview returns the caller's own review for a course.
func (s *ReviewService) GetUserReview(userID, courseID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&review).Error; err != nil {
		return nil, NotFound("Review not found!")
	}
	return &review, nil
}

// ListByCourse returns a course's reviews, newest first.
func (s *ReviewService) ListByCourse(courseID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating returns the arithmetic mean of a course's ratings, or nil
// when the course has no reviews yet.
func (s *ReviewService) AverageRating(courseID uint) (*float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}

// Delete removes a review. Only its author may delete it.
func (s *ReviewService) Delete(reviewID, userID uint) error {
	var review models.Review
	if err := s.db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return NotFound("Review not found!")
	}
	if review.UserID != userID {
		return Forbidden("Only the review's author can delete it!")
	}
	return s.db.Model(&review).Update("is_deleted", true).Error
}
