package memory

import (
	"context"
	"sort"

	"notehive-be/internal/entity"
	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PageRepository struct {
	store *Store
}

func NewPageRepository(store *Store) contract.PageRepository {
	return &PageRepository{store: store}
}

func matchPage(p *entity.Page, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.BySectionID:
			if p.SectionId != s.SectionID {
				return false
			}
		}
	}
	return true
}

func (r *PageRepository) Create(ctx context.Context, page *entity.Page) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.PageCreateErr != nil {
		return r.store.PageCreateErr
	}
	r.store.pages[page.Id] = clonePage(page)
	return nil
}

func (r *PageRepository) Update(ctx context.Context, page *entity.Page) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.pages[page.Id] = clonePage(page)
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.pages, id)
	return nil
}

func (r *PageRepository) DeleteBySectionIds(ctx context.Context, sectionIds []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, p := range r.store.pages {
		for _, sid := range sectionIds {
			if p.SectionId == sid {
				delete(r.store.pages, id)
				break
			}
		}
	}
	return nil
}

func (r *PageRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.pages {
		if matchPage(p, specs) {
			return clonePage(p), nil
		}
	}
	return nil, nil
}

func (r *PageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*entity.Page, 0)
	for _, p := range r.store.pages {
		if matchPage(p, specs) {
			result = append(result, clonePage(p))
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

func (r *PageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}
