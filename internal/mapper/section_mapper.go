package mapper

import (
	"time"

	"notehive-be/internal/entity"
	"notehive-be/internal/model"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Section{
		Id:         s.Id,
		Title:      s.Title,
		NotebookId: s.NotebookId,
		Position:   s.Position,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Section{
		Id:         s.Id,
		Title:      s.Title,
		NotebookId: s.NotebookId,
		Position:   s.Position,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
