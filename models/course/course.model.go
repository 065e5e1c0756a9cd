package course

import "gorm.io/gorm"

// Course statuses
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

// Course represents a learning course owned by one instructor
type Course struct {
	gorm.Model
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description" gorm:"type:text;default:''"`
	InstructorID uint    `json:"instructor_id" gorm:"index;not null"`
	CategoryID   uint    `json:"category_id" gorm:"index;not null"`
	Price        float64 `json:"price" gorm:"default:0"`        // 0 = free course
	Status       string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED, ARCHIVED
	Level        string  `json:"level" gorm:"default:'BEGINNER'"`
	Language     string  `json:"language" gorm:"default:'en'"`
	ThumbnailURL string  `json:"thumbnail_url" gorm:"default:''"`
	IsDeleted    bool    `json:"-" gorm:"default:false"`
}
