package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"default:''"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Mobile       string     `json:"mobile" gorm:"default:''"`
	Role         string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN, SUPER_ADMIN
	Password     string     `json:"-" gorm:"not null"`
	Bio          string     `json:"bio" gorm:"type:text;default:''"`
	ProfileImage string     `json:"profile_image" gorm:"default:''"`
	IsActive     bool       `json:"is_active" gorm:"default:true"` // false = suspended
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}
