package services

import (
	"errors"
	"time"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// ProgressService owns per-lesson completion state and the derived
// enrollment percentage.
type ProgressService struct {
	db    *gorm.DB
	certs *CertificateService
}

func NewProgressService(db *gorm.DB, certs *CertificateService) *ProgressService {
	return &ProgressService{db: db, certs: certs}
}

// Get returns an existing progress row. It never creates one on read.
func (s *ProgressService) Get(userID, enrollmentID, lessonID uint) (*courseModels.Progress, error) {
	if _, err := s.ownedEnrollment(userID, enrollmentID); err != nil {
		return nil, err
	}

	var progress courseModels.Progress
	if err := s.db.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
		First(&progress).Error; err != nil {
		return nil, NotFound("Progress not found for this lesson!")
	}
	return &progress, nil
}

// ListByEnrollment returns all progress rows for the enrollment in lesson order.
func (s *ProgressService) ListByEnrollment(userID, enrollmentID uint) ([]courseModels.Progress, error) {
	if _, err := s.ownedEnrollment(userID, enrollmentID); err != nil {
		return nil, err
	}

	var rows []courseModels.Progress
	err := s.db.
		Joins("JOIN lessons ON lessons.id = progresses.lesson_id").
		Where("progresses.enrollment_id = ?", enrollmentID).
		Order("lessons.order_index asc, lessons.id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkCompleted marks a lesson complete, creating the progress row lazily.
func (s *ProgressService) MarkCompleted(userID, enrollmentID, lessonID uint) (*courseModels.Progress, error) {
	return s.mark(userID, enrollmentID, lessonID, true)
}

// MarkIncomplete marks a lesson incomplete. The enrollment's CompletedAt is a
// high-water mark and is never cleared by this.
func (s *ProgressService) MarkIncomplete(userID, enrollmentID, lessonID uint) (*courseModels.Progress, error) {
	return s.mark(userID, enrollmentID, lessonID, false)
}

func (s *ProgressService) mark(userID, enrollmentID, lessonID uint, completed bool) (*courseModels.Progress, error) {
	enrollment, err := s.ownedEnrollment(userID, enrollmentID)
	if err != nil {
		return nil, err
	}

	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, NotFound("Lesson not found!")
	}
	if lesson.CourseID != enrollment.CourseID {
		return nil, Validation("Lesson does not belong to the enrolled course!")
	}

	var progress courseModels.Progress
	err = s.db.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
		First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Lazy creation on first touch
		progress = courseModels.Progress{EnrollmentID: enrollmentID, LessonID: lessonID}
		if err := s.db.Create(&progress).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
			// A concurrent touch created it first, load that row
			if err := s.db.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
				First(&progress).Error; err != nil {
				return nil, err
			}
		}
	}

	progress.Completed = completed
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	} else {
		progress.CompletedAt = nil
	}
	if err := s.db.Save(&progress).Error; err != nil {
		return nil, err
	}

	if err := s.recomputeEnrollment(enrollment); err != nil {
		return nil, err
	}
	return &progress, nil
}

// recomputeEnrollment refreshes the stored percentage and status, sets
// CompletedAt the first time the course hits 100%, and mints the certificate.
func (s *ProgressService) recomputeEnrollment(enrollment *courseModels.Enrollment) error {
	percent, completedCount, _, err := progressPercent(s.db, enrollment.ID, enrollment.CourseID)
	if err != nil {
		return err
	}

	enrollment.ProgressPercent = percent
	if percent >= 100 {
		enrollment.Status = courseModels.EnrollmentStatusCompleted
		if enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	} else if completedCount > 0 {
		enrollment.Status = courseModels.EnrollmentStatusInProgress
	} else {
		enrollment.Status = courseModels.EnrollmentStatusEnrolled
	}

	if err := s.db.Save(enrollment).Error; err != nil {
		return err
	}

	if percent >= 100 {
		if _, err := s.certs.Mint(enrollment.UserID, enrollment.CourseID, *enrollment.CompletedAt); err != nil {
			return err
		}
	}
	return nil
}

// ownedEnrollment loads the enrollment and checks the caller owns it.
func (s *ProgressService) ownedEnrollment(userID, enrollmentID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error; err != nil {
		return nil, NotFound("Enrollment not found!")
	}
	if enrollment.UserID != userID {
		return nil, Forbidden("Enrollment belongs to another user!")
	}
	return &enrollment, nil
}

// progressPercent computes completed/total*100 for an enrollment. A course
// with zero lessons reads as 0%, never a division by zero.
func progressPercent(db *gorm.DB, enrollmentID, courseID uint) (percent float64, completed, total int64, err error) {
	if err = db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}
	// The numerator joins back to live lessons so that completions of since
	// deleted lessons do not inflate the percentage past what the remaining
	// course content supports.
	if err = db.Model(&courseModels.Progress{}).
		Joins("JOIN lessons ON lessons.id = progresses.lesson_id AND lessons.course_id = ? AND lessons.is_deleted = ?", courseID, false).
		Where("progresses.enrollment_id = ? AND progresses.completed = ?", enrollmentID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, 0, err
	}

	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}
	return percent, completed, total, nil
}
