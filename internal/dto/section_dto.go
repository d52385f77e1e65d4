package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateSectionRequest struct {
	Id    uuid.UUID `json:"-"`
	Title string    `json:"title" validate:"required"`
}

type SectionResponse struct {
	Id         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	NotebookId uuid.UUID      `json:"notebook_id"`
	Position   int            `json:"position"`
	Pages      []PageResponse `json:"pages"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}
