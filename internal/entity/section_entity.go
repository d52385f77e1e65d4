package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section belongs to exactly one notebook. Position is the section's slot in
// the notebook's ordered list.
type Section struct {
	Id         uuid.UUID
	Title      string
	NotebookId uuid.UUID
	Position   int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
