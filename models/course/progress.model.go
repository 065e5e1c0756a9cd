package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress tracks one lesson's completion state within an enrollment.
// Rows are created lazily on first touch, never eagerly at enrollment time.
type Progress struct {
	gorm.Model
	EnrollmentID uint       `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson"`
	LessonID     uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson"`
	Completed    bool       `json:"completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"` // cleared again when marked incomplete
}
