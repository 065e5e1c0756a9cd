package utils

import (
	"lms/database"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler sets up the stale pending-payment reaper
func InitializePaymentScheduler() {
	log.Println("[PAYMENT-SCHEDULER] Initializing payment scheduler...")

	c := cron.New()

	// Run hourly to expire pending payments past their TTL
	c.AddFunc("0 * * * *", func() {
		log.Println("[PAYMENT-SCHEDULER] Running stale payment check...")
		ExpireStalePayments()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment scheduler started - runs hourly")
}

// ExpireStalePayments marks pending payments past their expiry as EXPIRED
func ExpireStalePayments() {
	db := database.Database.Db

	result := db.Model(&courseModels.PendingPayment{}).
		Where("status = ? AND expires_at < ?", courseModels.PaymentStatusPending, time.Now()).
		Update("status", courseModels.PaymentStatusExpired)
	if result.Error != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error expiring payments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[PAYMENT-SCHEDULER] Expired %d stale pending payments", result.RowsAffected)
	}
}
