package models

import "gorm.io/gorm"

// Review is one rating and optional comment per (user, course).
// A second submission overwrites rating/comment instead of creating a duplicate.
type Review struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1 to 5
	Comment   string `json:"comment" gorm:"type:text;default:''"`                     // Optional comment
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
