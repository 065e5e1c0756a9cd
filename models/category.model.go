package models

import "gorm.io/gorm"

// Category groups courses for browsing
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Slug        string `json:"slug" gorm:"index"`
	Description string `json:"description" gorm:"type:text;default:''"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
