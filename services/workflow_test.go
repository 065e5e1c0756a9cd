package services

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationApproval(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	admin := seedUser(t, db, "Root", "root@example.com", models.RoleAdmin)

	application, err := svc.SubmitApplication(student.ID, "I teach Go at meetups", "backend")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusPending, application.Status)

	// Only one pending application at a time
	_, err = svc.SubmitApplication(student.ID, "again", "backend")
	assert.Equal(t, KindConflict, KindOf(err))

	reviewed, err := svc.ReviewApplication(application.ID, admin.ID, true, "welcome aboard")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.ID, *reviewed.ReviewedBy)

	var promoted models.User
	require.NoError(t, db.First(&promoted, student.ID).Error)
	assert.Equal(t, models.RoleInstructor, promoted.Role)

	// Reviews are terminal
	_, err = svc.ReviewApplication(application.ID, admin.ID, false, "")
	assert.Equal(t, KindState, KindOf(err))
}

func TestApplicationRejectionKeepsRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	admin := seedUser(t, db, "Root", "root@example.com", models.RoleAdmin)

	application, err := svc.SubmitApplication(student.ID, "I teach Go at meetups", "")
	require.NoError(t, err)

	reviewed, err := svc.ReviewApplication(application.ID, admin.ID, false, "not enough experience")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusRejected, reviewed.Status)

	var unchanged models.User
	require.NoError(t, db.First(&unchanged, student.ID).Error)
	assert.Equal(t, models.RoleStudent, unchanged.Role)

	// A rejected applicant may apply again
	_, err = svc.SubmitApplication(student.ID, "second attempt", "")
	require.NoError(t, err)
}

func TestOnlyStudentsMayApply(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	instructor := seedUser(t, db, "Ravi", "ravi@example.com", models.RoleInstructor)

	_, err := svc.SubmitApplication(instructor.ID, "I already teach", "")
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestAppealLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	suspended := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	require.NoError(t, db.Model(suspended).Update("is_active", false).Error)
	admin := seedUser(t, db, "Root", "root@example.com", models.RoleAdmin)

	appeal, err := svc.SubmitAppeal(suspended.ID, "It was a misunderstanding")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusPending, appeal.Status)

	_, err = svc.SubmitAppeal(suspended.ID, "again")
	assert.Equal(t, KindConflict, KindOf(err))

	reviewed, err := svc.ReviewAppeal(appeal.ID, admin.ID, true, "reinstated")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusApproved, reviewed.Status)

	var reactivated models.User
	require.NoError(t, db.First(&reactivated, suspended.ID).Error)
	assert.True(t, reactivated.IsActive)

	_, err = svc.ReviewAppeal(appeal.ID, admin.ID, false, "")
	assert.Equal(t, KindState, KindOf(err))
}

func TestAppealRequiresSuspendedAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	active := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)

	_, err := svc.SubmitAppeal(active.ID, "I am fine actually")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestAppealRejectionLeavesAccountSuspended(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkflowService(db)

	suspended := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	require.NoError(t, db.Model(suspended).Update("is_active", false).Error)
	admin := seedUser(t, db, "Root", "root@example.com", models.RoleAdmin)

	appeal, err := svc.SubmitAppeal(suspended.ID, "please")
	require.NoError(t, err)

	_, err = svc.ReviewAppeal(appeal.ID, admin.ID, false, "policy violation stands")
	require.NoError(t, err)

	var stillSuspended models.User
	require.NoError(t, db.First(&stillSuspended, suspended.ID).Error)
	assert.False(t, stillSuspended.IsActive)
}
