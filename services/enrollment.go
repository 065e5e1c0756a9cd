package services

import (
	"errors"
	"time"

	courseModels "lms/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentVerifier is the external payment collaborator. Real capture and
// signature checks happen behind it; the service only cares whether the
// reference is acceptable for the given amount.
type PaymentVerifier interface {
	VerifyPayment(reference string, amount float64) error
}

// PaymentIntent is returned by InitiatePayment.
type PaymentIntent struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

const pendingPaymentTTL = 24 * time.Hour

// EnrollmentService owns the enrollment lifecycle for a (user, course) pair.
type EnrollmentService struct {
	db       *gorm.DB
	verifier PaymentVerifier
}

func NewEnrollmentService(db *gorm.DB, verifier PaymentVerifier) *EnrollmentService {
	return &EnrollmentService{db: db, verifier: verifier}
}

// InitiatePayment hands out a pending payment reference for a priced course.
// It never creates the enrollment itself.
func (s *EnrollmentService) InitiatePayment(userID, courseID uint) (*PaymentIntent, error) {
	course, err := s.enrollableCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.Price <= 0 {
		return nil, Validation("Course is free, use free enrollment instead!")
	}

	enrolled, err := s.IsEnrolled(userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, Conflict("Already enrolled in this course!")
	}

	payment := courseModels.PendingPayment{
		UserID:    userID,
		CourseID:  courseID,
		Reference: uuid.NewString(),
		Amount:    course.Price,
		Method:    "GATEWAY",
		Status:    courseModels.PaymentStatusPending,
		ExpiresAt: time.Now().Add(pendingPaymentTTL),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &PaymentIntent{Reference: payment.Reference, Amount: payment.Amount, Method: payment.Method}, nil
}

// CompleteEnrollment validates the payment reference and creates the
// enrollment inside one transaction.
func (s *EnrollmentService) CompleteEnrollment(userID, courseID uint, reference string) (*courseModels.Enrollment, error) {
	if reference == "" {
		return nil, Validation("Payment reference is required!")
	}

	course, err := s.enrollableCourse(courseID)
	if err != nil {
		return nil, err
	}

	var payment courseModels.PendingPayment
	if err := s.db.Where("reference = ? AND user_id = ? AND course_id = ? AND is_deleted = ?",
		reference, userID, courseID, false).First(&payment).Error; err != nil {
		return nil, NotFound("Payment reference not found!")
	}
	if payment.Status != courseModels.PaymentStatusPending {
		return nil, State("Payment reference already used or expired!")
	}
	if time.Now().After(payment.ExpiresAt) {
		return nil, State("Payment reference expired, initiate payment again!")
	}

	if err := s.verifier.VerifyPayment(reference, payment.Amount); err != nil {
		return nil, Validation("Payment could not be verified: " + err.Error())
	}

	enrollment := courseModels.Enrollment{
		UserID:           userID,
		CourseID:         course.ID,
		Status:           courseModels.EnrollmentStatusEnrolled,
		EnrolledAt:       time.Now(),
		PaymentReference: reference,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", courseModels.PaymentStatusCompleted).Error; err != nil {
			return err
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Already enrolled in this course!")
		}
		return nil, err
	}

	return &enrollment, nil
}

// EnrollFree enrolls the user directly when the course costs nothing.
func (s *EnrollmentService) EnrollFree(userID, courseID uint) (*courseModels.Enrollment, error) {
	course, err := s.enrollableCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.Price > 0 {
		return nil, Validation("Course is not free, payment is required!")
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		Status:     courseModels.EnrollmentStatusEnrolled,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Already enrolled in this course!")
		}
		return nil, err
	}

	return &enrollment, nil
}

// IsEnrolled is a pure existence check.
func (s *EnrollmentService) IsEnrolled(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&count).Error
	return count > 0, err
}

// GetEnrollment returns the enrollment with a freshly computed progress percentage.
func (s *EnrollmentService) GetEnrollment(userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return nil, NotFound("Enrollment not found!")
	}

	percent, _, _, err := progressPercent(s.db, enrollment.ID, enrollment.CourseID)
	if err != nil {
		return nil, err
	}
	enrollment.ProgressPercent = percent
	return &enrollment, nil
}

// ListUserEnrollments returns the user's enrollments, newest first, each with
// its live progress percentage.
func (s *EnrollmentService) ListUserEnrollments(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}

	for i := range enrollments {
		percent, _, _, err := progressPercent(s.db, enrollments[i].ID, enrollments[i].CourseID)
		if err != nil {
			return nil, err
		}
		enrollments[i].ProgressPercent = percent
	}
	return enrollments, nil
}

// enrollableCourse loads a course that can be enrolled in: only PUBLISHED
// courses qualify, a DRAFT or ARCHIVED course reads as absent.
func (s *EnrollmentService) enrollableCourse(courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ? AND status = ?",
		courseID, false, courseModels.StatusPublished).First(&course).Error; err != nil {
		return nil, NotFound("Course not found or not published!")
	}
	return &course, nil
}
