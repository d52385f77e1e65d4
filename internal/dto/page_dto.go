package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdatePageRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type PageResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	SectionId uuid.UUID  `json:"section_id"`
	Position  int        `json:"position"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
