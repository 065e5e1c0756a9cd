package course

import "gorm.io/gorm"

// Lesson types
const (
	LessonTypeVideo = "VIDEO"
	LessonTypePdf   = "PDF"
	LessonTypeQuiz  = "QUIZ"
	LessonTypeText  = "TEXT"
)

// Lesson is a single unit of content within a section
type Lesson struct {
	gorm.Model
	SectionID       uint   `json:"section_id" gorm:"index;not null"`
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Type            string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, PDF, QUIZ, TEXT
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsFree          bool   `json:"is_free" gorm:"default:false"` // previewable without enrollment
	VideoURL        string `json:"video_url" gorm:"default:''"`
	FileURL         string `json:"file_url" gorm:"default:''"`
	TextContent     string `json:"text_content" gorm:"type:text;default:''"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
