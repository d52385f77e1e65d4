package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateNotebookRequest struct {
	Id    uuid.UUID `json:"-"`
	Title string    `json:"title" validate:"required"`
}

type NotebookResponse struct {
	Id        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Sections  []SectionResponse `json:"sections"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}
