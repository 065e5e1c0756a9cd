package services

import (
	"fmt"
	"testing"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database carrying the full schema.
// Each test gets its own named database so shared-cache connections from
// the pool all see the same tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: "hashed",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, price float64, status string) *courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Title:        "Go From Scratch",
		InstructorID: instructorID,
		CategoryID:   1,
		Price:        price,
		Status:       status,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func seedSection(t *testing.T, db *gorm.DB, courseID uint, order int) *courseModels.Section {
	t.Helper()
	section := courseModels.Section{
		CourseID:   courseID,
		Title:      fmt.Sprintf("Section %d", order),
		OrderIndex: order,
	}
	require.NoError(t, db.Create(&section).Error)
	return &section
}

func seedLesson(t *testing.T, db *gorm.DB, courseID, sectionID uint, order int) *courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{
		CourseID:   courseID,
		SectionID:  sectionID,
		Title:      fmt.Sprintf("Lesson %d", order),
		Type:       courseModels.LessonTypeVideo,
		OrderIndex: order,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) *courseModels.Enrollment {
	t.Helper()
	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentStatusEnrolled,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}
