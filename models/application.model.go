package models

import (
	"time"

	"gorm.io/gorm"
)

// Workflow statuses shared by instructor applications and suspension appeals.
// PENDING -> APPROVED or REJECTED, terminal once reviewed.
const (
	WorkflowStatusPending  = "PENDING"
	WorkflowStatusApproved = "APPROVED"
	WorkflowStatusRejected = "REJECTED"
)

// InstructorApplication is a student's request to be promoted to instructor
type InstructorApplication struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	Motivation    string     `json:"motivation" gorm:"type:text;not null"`
	Expertise     string     `json:"expertise" gorm:"type:text;default:''"`
	Status        string     `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	ReviewedBy    *uint      `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	AdminResponse string     `json:"admin_response" gorm:"type:text;default:''"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}

// SuspensionAppeal is a suspended user's request for account reinstatement
type SuspensionAppeal struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	Reason        string     `json:"reason" gorm:"type:text;not null"`
	Status        string     `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	ReviewedBy    *uint      `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	AdminResponse string     `json:"admin_response" gorm:"type:text;default:''"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}
