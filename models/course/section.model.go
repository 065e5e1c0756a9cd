package course

import "gorm.io/gorm"

// Section is an ordered group of lessons within a course.
// Deleting a section cascades to its lessons at the service layer.
type Section struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // Section order in course
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
