package services

import (
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// WorkflowService runs the two linear approval machines: instructor
// applications and suspension appeals. Both move PENDING -> APPROVED/REJECTED
// and are terminal once reviewed.
type WorkflowService struct {
	db *gorm.DB
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{db: db}
}

// SubmitApplication files an instructor application for a student.
func (s *WorkflowService) SubmitApplication(userID uint, motivation, expertise string) (*models.InstructorApplication, error) {
	if motivation == "" {
		return nil, Validation("Motivation is required!")
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	if user.Role != models.RoleStudent {
		return nil, Conflict("Only students can apply to become an instructor!")
	}

	var pending int64
	s.db.Model(&models.InstructorApplication{}).
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.WorkflowStatusPending, false).
		Count(&pending)
	if pending > 0 {
		return nil, Conflict("An application is already pending review!")
	}

	application := models.InstructorApplication{
		UserID:     userID,
		Motivation: motivation,
		Expertise:  expertise,
		Status:     models.WorkflowStatusPending,
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ReviewApplication decides a pending application. Approval promotes the
// applicant to INSTRUCTOR. A second review of the same record is rejected.
func (s *WorkflowService) ReviewApplication(applicationID, reviewerID uint, approve bool, response string) (*models.InstructorApplication, error) {
	var application models.InstructorApplication
	if err := s.db.Where("id = ? AND is_deleted = ?", applicationID, false).
		First(&application).Error; err != nil {
		return nil, NotFound("Application not found!")
	}
	if application.Status != models.WorkflowStatusPending {
		return nil, State("Application has already been reviewed!")
	}

	now := time.Now()
	application.Status = models.WorkflowStatusRejected
	if approve {
		application.Status = models.WorkflowStatusApproved
	}
	application.ReviewedBy = &reviewerID
	application.ReviewedAt = &now
	application.AdminResponse = response

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&application).Error; err != nil {
			return err
		}
		if approve {
			return tx.Model(&models.User{}).Where("id = ?", application.UserID).
				Update("role", models.RoleInstructor).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// ListApplications returns applications for admin review, optionally filtered
// by status, oldest pending first.
func (s *WorkflowService) ListApplications(status string) ([]models.InstructorApplication, error) {
	db := s.db.Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var applications []models.InstructorApplication
	if err := db.Order("created_at asc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ListUserApplications returns the caller's own applications, newest first.
func (s *WorkflowService) ListUserApplications(userID uint) ([]models.InstructorApplication, error) {
	var applications []models.InstructorApplication
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// SubmitAppeal files a suspension appeal for a suspended user.
func (s *WorkflowService) SubmitAppeal(userID uint, reason string) (*models.SuspensionAppeal, error) {
	if reason == "" {
		return nil, Validation("Reason is required!")
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	if user.IsActive {
		return nil, Validation("Account is not suspended!")
	}

	var pending int64
	s.db.Model(&models.SuspensionAppeal{}).
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, models.WorkflowStatusPending, false).
		Count(&pending)
	if pending > 0 {
		return nil, Conflict("An appeal is already pending review!")
	}

	appeal := models.SuspensionAppeal{
		UserID: userID,
		Reason: reason,
		Status: models.WorkflowStatusPending,
	}
	if err := s.db.Create(&appeal).Error; err != nil {
		return nil, err
	}
	return &appeal, nil
}

// ReviewAppeal decides a pending appeal. Approval reactivates the account.
func (s *WorkflowService) ReviewAppeal(appealID, reviewerID uint, approve bool, response string) (*models.SuspensionAppeal, error) {
	var appeal models.SuspensionAppeal
	if err := s.db.Where("id = ? AND is_deleted = ?", appealID, false).First(&appeal).Error; err != nil {
		return nil, NotFound("Appeal not found!")
	}
	if appeal.Status != models.WorkflowStatusPending {
		return nil, State("Appeal has already been reviewed!")
	}

	now := time.Now()
	appeal.Status = models.WorkflowStatusRejected
	if approve {
		appeal.Status = models.WorkflowStatusApproved
	}
	appeal.ReviewedBy = &reviewerID
	appeal.ReviewedAt = &now
	appeal.AdminResponse = response

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&appeal).Error; err != nil {
			return err
		}
		if approve {
			return tx.Model(&models.User{}).Where("id = ?", appeal.UserID).
				Update("is_active", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &appeal, nil
}

// ListAppeals returns appeals for admin review, optionally filtered by status.
func (s *WorkflowService) ListAppeals(status string) ([]models.SuspensionAppeal, error) {
	db := s.db.Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var appeals []models.SuspensionAppeal
	if err := db.Order("created_at asc").Find(&appeals).Error; err != nil {
		return nil, err
	}
	return appeals, nil
}

// ListUserAppeals returns the caller's own appeals, newest first.
func (s *WorkflowService) ListUserAppeals(userID uint) ([]models.SuspensionAppeal, error) {
	var appeals []models.SuspensionAppeal
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&appeals).Error; err != nil {
		return nil, err
	}
	return appeals, nil
}
