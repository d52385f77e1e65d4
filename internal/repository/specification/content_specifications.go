package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNotebookID struct {
	NotebookID uuid.UUID
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notebook_id = ?", s.NotebookID)
}

type BySectionID struct {
	SectionID uuid.UUID
}

func (s BySectionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_id = ?", s.SectionID)
}

// TitleIEquals matches a title under case-insensitive comparison, used for
// the per-parent uniqueness checks.
type TitleIEquals struct {
	Title string
}

func (s TitleIEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(title) = LOWER(?)", s.Title)
}

// OrderByPosition keeps children in their stable list order.
type OrderByPosition struct{}

func (s OrderByPosition) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}
