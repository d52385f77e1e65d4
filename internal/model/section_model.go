package model

import (
	"time"

	"github.com/google/uuid"
)

type Section struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(255);not null"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Section) TableName() string {
	return "sections"
}
