package memory

import (
	"context"
	"sort"
	"strings"

	"notehive-be/internal/entity"
	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SectionRepository struct {
	store *Store
}

func NewSectionRepository(store *Store) contract.SectionRepository {
	return &SectionRepository{store: store}
}

func matchSection(sec *entity.Section, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if sec.Id != s.ID {
				return false
			}
		case specification.ByNotebookID:
			if sec.NotebookId != s.NotebookID {
				return false
			}
		case specification.TitleIEquals:
			if !strings.EqualFold(sec.Title, s.Title) {
				return false
			}
		}
	}
	return true
}

func (r *SectionRepository) Create(ctx context.Context, section *entity.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sections[section.Id] = cloneSection(section)
	return nil
}

func (r *SectionRepository) Update(ctx context.Context, section *entity.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sections[section.Id] = cloneSection(section)
	return nil
}

func (r *SectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sections, id)
	return nil
}

func (r *SectionRepository) DeleteByNotebookId(ctx context.Context, notebookId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, sec := range r.store.sections {
		if sec.NotebookId == notebookId {
			delete(r.store.sections, id)
		}
	}
	return nil
}

func (r *SectionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, sec := range r.store.sections {
		if matchSection(sec, specs) {
			return cloneSection(sec), nil
		}
	}
	return nil, nil
}

func (r *SectionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*entity.Section, 0)
	for _, sec := range r.store.sections {
		if matchSection(sec, specs) {
			result = append(result, cloneSection(sec))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *SectionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}
