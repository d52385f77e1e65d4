package service

import (
	"context"
	"strings"
	"time"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"
	"notehive-be/internal/entity"
	"notehive-be/internal/repository/specification"
	"notehive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISectionService interface {
	Create(ctx context.Context, userId, notebookId uuid.UUID, req *dto.CreateSectionRequest) (*dto.SectionResponse, error)
	GetByNotebook(ctx context.Context, userId, notebookId uuid.UUID) ([]dto.SectionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type sectionService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewSectionService(uowFactory unitofwork.RepositoryFactory) ISectionService {
	return &sectionService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Create appends a section to the notebook's list together with its starter
// page.
func (s *sectionService) Create(ctx context.Context, userId, notebookId uuid.UUID, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("section title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwnedNotebook(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, err
	}

	duplicate, err := uow.SectionRepository().FindOne(ctx,
		specification.ByNotebookID{NotebookID: notebook.Id},
		specification.TitleIEquals{Title: title},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to check section title", err)
	}
	if duplicate != nil {
		return nil, apperror.NewConflict("a section with this title already exists in this notebook")
	}

	count, err := uow.SectionRepository().Count(ctx, specification.ByNotebookID{NotebookID: notebook.Id})
	if err != nil {
		return nil, apperror.NewInternal("failed to count sections", err)
	}

	now := s.now()
	section := &entity.Section{
		Id:         uuid.New(),
		Title:      title,
		NotebookId: notebook.Id,
		Position:   int(count),
		CreatedAt:  now,
	}
	page := &entity.Page{
		Id:        uuid.New(),
		Title:     defaultPageTitle,
		SectionId: section.Id,
		Position:  0,
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewInternal("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.SectionRepository().Create(ctx, section); err != nil {
		return nil, apperror.NewInternal("failed to create section", err)
	}
	if err := uow.PageRepository().Create(ctx, page); err != nil {
		return nil, apperror.NewInternal("failed to create starter page", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal("failed to commit section", err)
	}

	res := toSectionResponse(section, []*entity.Page{page})
	return &res, nil
}

func (s *sectionService) GetByNotebook(ctx context.Context, userId, notebookId uuid.UUID) ([]dto.SectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwnedNotebook(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, err
	}

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebook.Id},
		specification.OrderByPosition{},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to list sections", err)
	}
	if len(sections) == 0 {
		return nil, apperror.NewNotFound("no sections found")
	}

	responses := make([]dto.SectionResponse, 0, len(sections))
	for _, section := range sections {
		pages, err := uow.PageRepository().FindAll(ctx,
			specification.BySectionID{SectionID: section.Id},
			specification.OrderByPosition{},
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to list pages", err)
		}
		responses = append(responses, toSectionResponse(section, pages))
	}
	return responses, nil
}

func (s *sectionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("section title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := findOwnedSection(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	duplicate, err := uow.SectionRepository().FindOne(ctx,
		specification.ByNotebookID{NotebookID: section.NotebookId},
		specification.TitleIEquals{Title: title},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to check section title", err)
	}
	if duplicate != nil && duplicate.Id != section.Id {
		return nil, apperror.NewConflict("a section with this title already exists in this notebook")
	}

	now := s.now()
	section.Title = title
	section.UpdatedAt = &now
	if err := uow.SectionRepository().Update(ctx, section); err != nil {
		return nil, apperror.NewInternal("failed to update section", err)
	}

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.BySectionID{SectionID: section.Id},
		specification.OrderByPosition{},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to list pages", err)
	}

	res := toSectionResponse(section, pages)
	return &res, nil
}

// Delete removes the section and all of its pages, pages first.
func (s *sectionService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := findOwnedSection(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.NewInternal("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.PageRepository().DeleteBySectionIds(ctx, []uuid.UUID{section.Id}); err != nil {
		return apperror.NewInternal("failed to delete pages", err)
	}
	if err := uow.SectionRepository().Delete(ctx, section.Id); err != nil {
		return apperror.NewInternal("failed to delete section", err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.NewInternal("failed to commit delete", err)
	}
	return nil
}
