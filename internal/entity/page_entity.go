package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page is the leaf of the hierarchy. Content is an opaque text/markup blob.
type Page struct {
	Id        uuid.UUID
	Title     string
	Content   string
	SectionId uuid.UUID
	Position  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}
