package services

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCourseCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusDraft)
	section := seedSection(t, db, course.ID, 0)
	lesson := seedLesson(t, db, course.ID, section.ID, 0)

	require.NoError(t, svc.DeleteCourse(course.ID))

	var reloadedCourse courseModels.Course
	require.NoError(t, db.First(&reloadedCourse, course.ID).Error)
	assert.True(t, reloadedCourse.IsDeleted)

	var reloadedSection courseModels.Section
	require.NoError(t, db.First(&reloadedSection, section.ID).Error)
	assert.True(t, reloadedSection.IsDeleted)

	var reloadedLesson courseModels.Lesson
	require.NoError(t, db.First(&reloadedLesson, lesson.ID).Error)
	assert.True(t, reloadedLesson.IsDeleted)
}

func TestDeleteSectionCascadesToLessons(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusDraft)
	section := seedSection(t, db, course.ID, 0)
	lesson := seedLesson(t, db, course.ID, section.ID, 0)
	untouched := seedSection(t, db, course.ID, 1)

	require.NoError(t, svc.DeleteSection(section.ID))

	var reloadedLesson courseModels.Lesson
	require.NoError(t, db.First(&reloadedLesson, lesson.ID).Error)
	assert.True(t, reloadedLesson.IsDeleted)

	var reloadedUntouched courseModels.Section
	require.NoError(t, db.First(&reloadedUntouched, untouched.ID).Error)
	assert.False(t, reloadedUntouched.IsDeleted)
}

func TestReorderSections(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusDraft)
	first := seedSection(t, db, course.ID, 0)
	second := seedSection(t, db, course.ID, 1)
	third := seedSection(t, db, course.ID, 2)

	require.NoError(t, svc.ReorderSections(course.ID, []uint{third.ID, first.ID, second.ID}))

	var sections []courseModels.Section
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&sections).Error)
	require.Len(t, sections, 3)
	assert.Equal(t, third.ID, sections[0].ID)
	assert.Equal(t, first.ID, sections[1].ID)
	assert.Equal(t, second.ID, sections[2].ID)
}

func TestReorderRejectsPartialOrUnknownLists(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusDraft)
	first := seedSection(t, db, course.ID, 0)
	seedSection(t, db, course.ID, 1)

	// Missing a sibling
	err := svc.ReorderSections(course.ID, []uint{first.ID})
	assert.Equal(t, KindValidation, KindOf(err))

	// Unknown id
	err = svc.ReorderSections(course.ID, []uint{first.ID, 12345})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestReorderLessons(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := seedCourse(t, db, 99, 0, courseModels.StatusDraft)
	section := seedSection(t, db, course.ID, 0)
	first := seedLesson(t, db, course.ID, section.ID, 0)
	second := seedLesson(t, db, course.ID, section.ID, 1)

	require.NoError(t, svc.ReorderLessons(section.ID, []uint{second.ID, first.ID}))

	var lessons []courseModels.Lesson
	require.NoError(t, db.Where("section_id = ?", section.ID).Order("order_index asc").Find(&lessons).Error)
	require.Len(t, lessons, 2)
	assert.Equal(t, second.ID, lessons[0].ID)
	assert.Equal(t, first.ID, lessons[1].ID)
}
