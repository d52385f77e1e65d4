package mapper

import (
	"time"

	"notehive-be/internal/entity"
	"notehive-be/internal/model"
)

type PageMapper struct{}

func NewPageMapper() *PageMapper {
	return &PageMapper{}
}

func (m *PageMapper) ToEntity(p *model.Page) *entity.Page {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Page{
		Id:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		SectionId: p.SectionId,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PageMapper) ToModel(p *entity.Page) *model.Page {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Page{
		Id:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		SectionId: p.SectionId,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PageMapper) ToEntities(pages []*model.Page) []*entity.Page {
	entities := make([]*entity.Page, len(pages))
	for i, p := range pages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
