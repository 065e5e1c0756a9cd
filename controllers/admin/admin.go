package adminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	adminValidator "lms/validators/admin"
	applicationValidator "lms/validators/application"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

func workflowService() *services.WorkflowService {
	return services.NewWorkflowService(database.Database.Db)
}

// ListUsers lists platform users with role/status filters and pagination
func ListUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*adminValidator.UserListQuery)
	if !ok {
		reqData = &adminValidator.UserListQuery{Page: 1, Limit: 20}
	}
	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if reqData.Role != "" {
		db = db.Where("role = ?", reqData.Role)
	}
	switch reqData.Status {
	case "ACTIVE":
		db = db.Where("is_active = ?", true)
	case "SUSPENDED":
		db = db.Where("is_active = ?", false)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// SuspendUser deactivates a user account
func SuspendUser(c *fiber.Ctx) error {
	admin := c.Locals("user").(*models.User)
	targetID := c.Locals("targetUserID").(uint)

	if targetID == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot suspend your own account!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).
		First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Super admins can only be suspended by another super admin
	if target.Role == models.RoleSuperAdmin && admin.Role != models.RoleSuperAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot suspend a super admin!", nil)
	}

	if !target.IsActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is already suspended!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("is_active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to suspend user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User suspended successfully!", target)
}

// ReactivateUser restores a suspended account without an appeal
func ReactivateUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).
		First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if target.IsActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is not suspended!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("is_active", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reactivate user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User reactivated successfully!", target)
}

// ListApplications lists instructor applications, optionally by status
func ListApplications(c *fiber.Ctx) error {
	applications, err := workflowService().ListApplications(c.Query("status"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// ReviewApplication decides a pending instructor application
func ReviewApplication(c *fiber.Ctx) error {
	admin := c.Locals("user").(*models.User)
	recordID := c.Locals("recordID").(uint)

	reqData, ok := c.Locals("validatedReviewDecision").(*applicationValidator.ReviewDecisionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	application, err := workflowService().ReviewApplication(recordID, admin.ID, reqData.Approve, reqData.Response)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var applicant models.User
	if err := database.Database.Db.Where("id = ?", application.UserID).First(&applicant).Error; err == nil {
		go utils.SendApplicationDecisionEmail(applicant.Email, applicant.Name, application.Status, application.AdminResponse)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application reviewed successfully!", application)
}

// ListAppeals lists suspension appeals, optionally by status
func ListAppeals(c *fiber.Ctx) error {
	appeals, err := workflowService().ListAppeals(c.Query("status"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appeals fetched successfully!", appeals)
}

// ReviewAppeal decides a pending suspension appeal
func ReviewAppeal(c *fiber.Ctx) error {
	admin := c.Locals("user").(*models.User)
	recordID := c.Locals("recordID").(uint)

	reqData, ok := c.Locals("validatedReviewDecision").(*applicationValidator.ReviewDecisionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	appeal, err := workflowService().ReviewAppeal(recordID, admin.ID, reqData.Approve, reqData.Response)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var appellant models.User
	if err := database.Database.Db.Where("id = ?", appeal.UserID).First(&appellant).Error; err == nil {
		go utils.SendAppealDecisionEmail(appellant.Email, appellant.Name, appeal.Status, appeal.AdminResponse)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appeal reviewed successfully!", appeal)
}

// CreateCategory creates a course category
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*adminValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Slug:        utils.GenerateSlug(reqData.Name),
		Description: reqData.Description,
	}
	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory updates a category's name or description
func UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	reqData, ok := c.Locals("validatedCategory").(*adminValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).
		First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	category.Name = reqData.Name
	category.Slug = utils.GenerateSlug(reqData.Name)
	category.Description = reqData.Description

	if err := database.Database.Db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory soft-deletes a category that has no live courses
func DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(uint)

	var category models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", categoryID, false).
		First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var courseCount int64
	database.Database.Db.Model(&courseModels.Course{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).Count(&courseCount)
	if courseCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category still has courses!", nil)
	}

	if err := database.Database.Db.Model(&category).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}

// DashboardStats returns platform totals and this-month activity
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalInstructors, totalCourses, totalEnrollments, totalCertificates int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleInstructor).Count(&totalInstructors)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND status = ?", false, courseModels.StatusPublished).Count(&totalCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)

	monthStart := now.BeginningOfMonth()
	var monthEnrollments, monthSignups int64
	db.Model(&courseModels.Enrollment{}).
		Where("is_deleted = ? AND created_at >= ?", false, monthStart).Count(&monthEnrollments)
	db.Model(&models.User{}).
		Where("is_deleted = ? AND created_at >= ?", false, monthStart).Count(&monthSignups)

	var pendingApplications, pendingAppeals int64
	db.Model(&models.InstructorApplication{}).
		Where("is_deleted = ? AND status = ?", false, models.WorkflowStatusPending).Count(&pendingApplications)
	db.Model(&models.SuspensionAppeal{}).
		Where("is_deleted = ? AND status = ?", false, models.WorkflowStatusPending).Count(&pendingAppeals)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":            totalUsers,
		"total_instructors":      totalInstructors,
		"published_courses":      totalCourses,
		"total_enrollments":      totalEnrollments,
		"total_certificates":     totalCertificates,
		"enrollments_this_month": monthEnrollments,
		"signups_this_month":     monthSignups,
		"pending_applications":   pendingApplications,
		"pending_appeals":        pendingAppeals,
	})
}
