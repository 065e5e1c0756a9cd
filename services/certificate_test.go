package services

import (
	"testing"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)

	first, err := svc.Mint(student.ID, course.ID, time.Now())
	require.NoError(t, err)
	assert.Regexp(t, certNumberPattern, first.CertificateNumber)

	second, err := svc.Mint(student.ID, course.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestVerifyReturnsDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	instructor := seedUser(t, db, "Ravi", "ravi@example.com", models.RoleInstructor)
	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, instructor.ID, 0, courseModels.StatusPublished)

	cert, err := svc.Mint(student.ID, course.ID, time.Now())
	require.NoError(t, err)

	details, err := svc.Verify(cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, course.Title, details.CourseTitle)
	assert.Equal(t, "Asha", details.StudentName)
	assert.Equal(t, "Ravi", details.InstructorName)
}

func TestVerifyUnknownNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	_, err := svc.Verify("SC-20260101-00000")
	assert.Equal(t, KindNotFound, KindOf(err))

	// Malformed input reads the same as an absent certificate
	_, err = svc.Verify("definitely-not-a-number")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestGetByCourseBeforeCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)

	_, err := svc.GetByCourse(student.ID, course.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	courseOne := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	courseTwo := seedCourse(t, db, 99, 0, courseModels.StatusPublished)

	_, err := svc.Mint(student.ID, courseOne.ID, time.Now())
	require.NoError(t, err)
	_, err = svc.Mint(student.ID, courseTwo.ID, time.Now())
	require.NoError(t, err)

	certs, err := svc.ListByUser(student.ID)
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}
