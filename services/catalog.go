package services

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CatalogService owns the Course -> Section -> Lesson aggregate: cascade
// deletes and sibling reordering, each inside one transaction.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// DeleteCourse soft-deletes a course together with its sections and lessons.
func (s *CatalogService) DeleteCourse(courseID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Lesson{}).
			Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&courseModels.Section{}).
			Where("course_id = ?", courseID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ?", courseID).Update("is_deleted", true).Error
	})
}

// DeleteSection soft-deletes a section together with its lessons.
func (s *CatalogService) DeleteSection(sectionID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Lesson{}).
			Where("section_id = ?", sectionID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Section{}).
			Where("id = ?", sectionID).Update("is_deleted", true).Error
	})
}

// ReorderSections rewrites the order indexes of a course's sections to match
// the given id order. Every live section of the course must appear exactly once.
func (s *CatalogService) ReorderSections(courseID uint, orderedIDs []uint) error {
	var sections []courseModels.Section
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Find(&sections).Error; err != nil {
		return err
	}
	if err := checkReorderIDs(sectionIDs(sections), orderedIDs); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&courseModels.Section{}).
				Where("id = ?", id).Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReorderLessons rewrites the order indexes of a section's lessons to match
// the given id order.
func (s *CatalogService) ReorderLessons(sectionID uint, orderedIDs []uint) error {
	var lessons []courseModels.Lesson
	if err := s.db.Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Find(&lessons).Error; err != nil {
		return err
	}
	if err := checkReorderIDs(lessonIDs(lessons), orderedIDs); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&courseModels.Lesson{}).
				Where("id = ?", id).Update("order_index", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func sectionIDs(sections []courseModels.Section) []uint {
	ids := make([]uint, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

func lessonIDs(lessons []courseModels.Lesson) []uint {
	ids := make([]uint, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return ids
}

// checkReorderIDs verifies ordered is a permutation of existing.
func checkReorderIDs(existing, ordered []uint) error {
	if len(existing) != len(ordered) {
		return Validation("Reorder list must contain every item exactly once!")
	}
	seen := make(map[uint]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}
	for _, id := range ordered {
		if !seen[id] {
			return Validation("Reorder list contains an unknown item!")
		}
		delete(seen, id)
	}
	return nil
}
