package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// certNumberAttempts bounds the retry loop on a certificate-number collision.
const certNumberAttempts = 3

// CertificateService mints and serves proof-of-completion certificates.
type CertificateService struct {
	db *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{db: db}
}

// CertificateDetails carries everything the PDF renderer needs.
type CertificateDetails struct {
	Certificate    courseModels.Certificate `json:"certificate"`
	CourseTitle    string                   `json:"course_title"`
	StudentName    string                   `json:"student_name"`
	InstructorName string                   `json:"instructor_name"`
}

// Mint creates the certificate for (user, course) if none exists. The
// composite unique index is the concurrency guard: a concurrent duplicate
// insert resolves to the already-minted certificate, never a second row.
func (s *CertificateService) Mint(userID, courseID uint, completionDate time.Time) (*courseModels.Certificate, error) {
	var existing courseModels.Certificate
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&existing).Error; err == nil {
		return &existing, nil
	}

	for attempt := 0; attempt < certNumberAttempts; attempt++ {
		cert := courseModels.Certificate{
			UserID:            userID,
			CourseID:          courseID,
			CertificateNumber: generateCertificateNumber(),
			IssuedAt:          time.Now(),
			CompletionDate:    completionDate,
		}
		err := s.db.Create(&cert).Error
		if err == nil {
			return &cert, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Either the (user, course) pair lost a race or the number collided.
		if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
			First(&existing).Error; err == nil {
			return &existing, nil
		}
	}
	return nil, Conflict("Could not allocate a unique certificate number!")
}

// GetByCourse returns the caller's certificate for a course.
func (s *CertificateService) GetByCourse(userID, courseID uint) (*courseModels.Certificate, error) {
	var cert courseModels.Certificate
	if err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&cert).Error; err != nil {
		return nil, NotFound("Certificate not found, complete the course first!")
	}
	return &cert, nil
}

// ListByUser returns the user's certificates, most recent first.
func (s *CertificateService) ListByUser(userID uint) ([]courseModels.Certificate, error) {
	var certs []courseModels.Certificate
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

// Verify looks a certificate up by number. Malformed and absent numbers both
// read as not found so the response leaks nothing about the format.
func (s *CertificateService) Verify(certificateNumber string) (*CertificateDetails, error) {
	var cert courseModels.Certificate
	if err := s.db.Where("certificate_number = ? AND is_deleted = ?", certificateNumber, false).
		First(&cert).Error; err != nil {
		return nil, NotFound("Certificate not found!")
	}
	return s.details(&cert)
}

// Details resolves the names the PDF renderer and verification view need.
func (s *CertificateService) Details(userID, courseID uint) (*CertificateDetails, error) {
	cert, err := s.GetByCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	return s.details(cert)
}

func (s *CertificateService) details(cert *courseModels.Certificate) (*CertificateDetails, error) {
	var course courseModels.Course
	if err := s.db.Where("id = ?", cert.CourseID).First(&course).Error; err != nil {
		return nil, NotFound("Course not found!")
	}
	var student models.User
	if err := s.db.Where("id = ?", cert.UserID).First(&student).Error; err != nil {
		return nil, NotFound("User not found!")
	}
	var instructor models.User
	s.db.Where("id = ?", course.InstructorID).First(&instructor)

	return &CertificateDetails{
		Certificate:    *cert,
		CourseTitle:    course.Title,
		StudentName:    student.Name,
		InstructorName: instructor.Name,
	}, nil
}

// generateCertificateNumber builds SC-<YYYYMMDD>-<5 random digits>. The
// unique index plus the bounded retry in Mint covers a same-day collision.
func generateCertificateNumber() string {
	return fmt.Sprintf("SC-%s-%05d", time.Now().Format("20060102"), rand.Intn(100000))
}
