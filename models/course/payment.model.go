package course

import (
	"time"

	"gorm.io/gorm"
)

// Pending payment statuses
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusExpired   = "EXPIRED"
)

// PendingPayment is the reference handed out by InitiatePayment and consumed
// once when the enrollment is completed. Stale rows are expired by the
// payment scheduler.
type PendingPayment struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Reference string    `json:"reference" gorm:"unique;not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Method    string    `json:"method" gorm:"default:'GATEWAY'"`
	Status    string    `json:"status" gorm:"default:'PENDING'"` // PENDING, COMPLETED, EXPIRED
	ExpiresAt time.Time `json:"expires_at"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
