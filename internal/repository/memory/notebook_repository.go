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

type NotebookRepository struct {
	store *Store
}

func NewNotebookRepository(store *Store) contract.NotebookRepository {
	return &NotebookRepository{store: store}
}

func matchNotebook(n *entity.Notebook, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		case specification.TitleIEquals:
			if !strings.EqualFold(n.Title, s.Title) {
				return false
			}
		}
	}
	return true
}

func (r *NotebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notebooks[notebook.Id] = cloneNotebook(notebook)
	return nil
}

func (r *NotebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notebooks[notebook.Id] = cloneNotebook(notebook)
	return nil
}

func (r *NotebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.notebooks, id)
	return nil
}

func (r *NotebookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			return cloneNotebook(n), nil
		}
	}
	return nil, nil
}

func (r *NotebookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*entity.Notebook, 0)
	for _, n := range r.store.notebooks {
		if matchNotebook(n, specs) {
			result = append(result, cloneNotebook(n))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *NotebookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}
