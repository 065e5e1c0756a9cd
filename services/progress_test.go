package services

import (
	"regexp"
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var certNumberPattern = regexp.MustCompile(`^SC-\d{8}-\d{5}$`)

func TestProgressLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	section := seedSection(t, db, course.ID, 0)
	lessonOne := seedLesson(t, db, course.ID, section.ID, 0)
	lessonTwo := seedLesson(t, db, course.ID, section.ID, 1)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	// First lesson done: halfway, in progress
	_, err := svc.MarkCompleted(student.ID, enrollment.ID, lessonOne.ID)
	require.NoError(t, err)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.InDelta(t, 50.0, reloaded.ProgressPercent, 0.01)
	assert.Equal(t, courseModels.EnrollmentStatusInProgress, reloaded.Status)
	assert.Nil(t, reloaded.CompletedAt)

	// Second lesson done: completed, certificate minted
	_, err = svc.MarkCompleted(student.ID, enrollment.ID, lessonTwo.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.InDelta(t, 100.0, reloaded.ProgressPercent, 0.01)
	assert.Equal(t, courseModels.EnrollmentStatusCompleted, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)
	firstCompletedAt := *reloaded.CompletedAt

	var cert courseModels.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&cert).Error)
	assert.Regexp(t, certNumberPattern, cert.CertificateNumber)

	// Unmarking drops the live percentage but CompletedAt and the
	// certificate are both high-water marks and stay put
	_, err = svc.MarkIncomplete(student.ID, enrollment.ID, lessonTwo.ID)
	require.NoError(t, err)

	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.InDelta(t, 50.0, reloaded.ProgressPercent, 0.01)
	assert.Equal(t, courseModels.EnrollmentStatusInProgress, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)
	assert.Equal(t, firstCompletedAt.Unix(), reloaded.CompletedAt.Unix())

	var certCount int64
	db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&certCount)
	assert.EqualValues(t, 1, certCount)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	section := seedSection(t, db, course.ID, 0)
	lesson := seedLesson(t, db, course.ID, section.ID, 0)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	_, err := svc.MarkCompleted(student.ID, enrollment.ID, lesson.ID)
	require.NoError(t, err)
	_, err = svc.MarkCompleted(student.ID, enrollment.ID, lesson.ID)
	require.NoError(t, err)

	var rows int64
	db.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollment.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)
}

func TestMarkLessonFromAnotherCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	other := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	otherSection := seedSection(t, db, other.ID, 0)
	foreignLesson := seedLesson(t, db, other.ID, otherSection.ID, 0)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	_, err := svc.MarkCompleted(student.ID, enrollment.ID, foreignLesson.ID)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestProgressOwnershipIsEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	owner := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	intruder := seedUser(t, db, "Vik", "vik@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	section := seedSection(t, db, course.ID, 0)
	lesson := seedLesson(t, db, course.ID, section.ID, 0)
	enrollment := seedEnrollment(t, db, owner.ID, course.ID)

	_, err := svc.MarkCompleted(intruder.ID, enrollment.ID, lesson.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = svc.ListByEnrollment(intruder.ID, enrollment.ID)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestGetNeverCreatesProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	section := seedSection(t, db, course.ID, 0)
	lesson := seedLesson(t, db, course.ID, section.ID, 0)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	_, err := svc.Get(student.ID, enrollment.ID, lesson.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	var rows int64
	db.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollment.ID).Count(&rows)
	assert.EqualValues(t, 0, rows)
}

func TestDeletedLessonCompletionsDoNotCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db, NewCertificateService(db))

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	section := seedSection(t, db, course.ID, 0)
	lessonOne := seedLesson(t, db, course.ID, section.ID, 0)
	lessonTwo := seedLesson(t, db, course.ID, section.ID, 1)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	_, err := svc.MarkCompleted(student.ID, enrollment.ID, lessonOne.ID)
	require.NoError(t, err)

	// The completed lesson is removed from the course. Its leftover
	// completion must not count against the remaining content, or a
	// half-finished course would read as finished.
	require.NoError(t, db.Model(&courseModels.Lesson{}).
		Where("id = ?", lessonOne.ID).Update("is_deleted", true).Error)

	percent, completed, total, err := progressPercent(db, enrollment.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, percent)
	assert.Zero(t, completed)
	assert.EqualValues(t, 1, total)

	// Starting the remaining lesson recomputes the enrollment without
	// tipping it to completed
	_, err = svc.MarkIncomplete(student.ID, enrollment.ID, lessonTwo.ID)
	require.NoError(t, err)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.Zero(t, reloaded.ProgressPercent)
	assert.NotEqual(t, courseModels.EnrollmentStatusCompleted, reloaded.Status)
	assert.Nil(t, reloaded.CompletedAt)

	var certCount int64
	db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&certCount)
	assert.EqualValues(t, 0, certCount)
}

func TestEmptyCourseReadsZeroPercent(t *testing.T) {
	db := newTestDB(t)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	enrollment := seedEnrollment(t, db, student.ID, course.ID)

	percent, completed, total, err := progressPercent(db, enrollment.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, percent)
	assert.Zero(t, completed)
	assert.Zero(t, total)
}
