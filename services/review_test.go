package services

import (
	"strings"
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)

	_, err := svc.Upsert(student.ID, course.ID, 4, "nice course")
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestUpsertValidatesInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	seedEnrollment(t, db, student.ID, course.ID)

	_, err := svc.Upsert(student.ID, course.ID, 0, "")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Upsert(student.ID, course.ID, 6, "")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.Upsert(student.ID, course.ID, 4, strings.Repeat("x", 1001))
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestUpsertOverwritesExistingReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	seedEnrollment(t, db, student.ID, course.ID)

	first, err := svc.Upsert(student.ID, course.ID, 5, "loved it")
	require.NoError(t, err)

	second, err := svc.Upsert(student.ID, course.ID, 2, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Rating)

	var count int64
	db.Model(&models.Review{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResubmitAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	student := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	seedEnrollment(t, db, student.ID, course.ID)

	review, err := svc.Upsert(student.ID, course.ID, 2, "too basic")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(review.ID, student.ID))

	again, err := svc.Upsert(student.ID, course.ID, 5, "grew on me")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Rating)
	assert.False(t, again.IsDeleted)

	var count int64
	db.Model(&models.Review{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	fetched, err := svc.GetUserReview(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "grew on me", fetched.Comment)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	userOne := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	userTwo := seedUser(t, db, "Vik", "vik@example.com", models.RoleStudent)
	seedEnrollment(t, db, userOne.ID, course.ID)
	seedEnrollment(t, db, userTwo.ID, course.ID)

	_, err := svc.Upsert(userOne.ID, course.ID, 4, "")
	require.NoError(t, err)
	_, err = svc.Upsert(userTwo.ID, course.ID, 2, "")
	require.NoError(t, err)

	avg, err := svc.AverageRating(course.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 3.0, *avg, 0.01)
}

func TestAverageRatingWithNoReviews(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)

	avg, err := svc.AverageRating(course.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	author := seedUser(t, db, "Asha", "asha@example.com", models.RoleStudent)
	stranger := seedUser(t, db, "Vik", "vik@example.com", models.RoleStudent)
	course := seedCourse(t, db, 99, 0, courseModels.StatusPublished)
	seedEnrollment(t, db, author.ID, course.ID)

	review, err := svc.Upsert(author.ID, course.ID, 4, "")
	require.NoError(t, err)

	err = svc.Delete(review.ID, stranger.ID)
	assert.Equal(t, KindForbidden, KindOf(err))

	require.NoError(t, svc.Delete(review.ID, author.ID))

	_, err = svc.GetUserReview(author.ID, course.ID)
	assert.Equal(t, KindNotFound, KindOf(err))
}
