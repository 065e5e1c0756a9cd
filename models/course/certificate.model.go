package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is the proof-of-completion artifact, at most one per (user, course)
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique;not null"` // SC-<YYYYMMDD>-<5 digits>
	IssuedAt          time.Time `json:"issued_at"`
	CompletionDate    time.Time `json:"completion_date"` // enrollment's completion timestamp
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
