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

type INotebookService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.NotebookResponse, error)
	GetOne(ctx context.Context, userId, id uuid.UUID) (*dto.NotebookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Create makes a notebook together with its starter section and page, all or
// nothing.
func (s *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("notebook title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	duplicate, err := uow.NotebookRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.TitleIEquals{Title: title},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to check notebook title", err)
	}
	if duplicate != nil {
		return nil, apperror.NewConflict("a notebook with this title already exists")
	}

	now := s.now()
	notebook := &entity.Notebook{
		Id:        uuid.New(),
		Title:     title,
		UserId:    userId,
		CreatedAt: now,
	}
	section := &entity.Section{
		Id:         uuid.New(),
		Title:      defaultSectionTitle,
		NotebookId: notebook.Id,
		Position:   0,
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

	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, apperror.NewInternal("failed to create notebook", err)
	}
	if err := uow.SectionRepository().Create(ctx, section); err != nil {
		return nil, apperror.NewInternal("failed to create starter section", err)
	}
	if err := uow.PageRepository().Create(ctx, page); err != nil {
		return nil, apperror.NewInternal("failed to create starter page", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.NewInternal("failed to commit notebook", err)
	}

	res := toNotebookResponse(notebook, []dto.SectionResponse{
		toSectionResponse(section, []*entity.Page{page}),
	})
	return &res, nil
}

func (s *notebookService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to list notebooks", err)
	}
	if len(notebooks) == 0 {
		return nil, apperror.NewNotFound("no notebooks found")
	}

	responses := make([]dto.NotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		sections, err := s.loadSections(ctx, uow, notebook.Id)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toNotebookResponse(notebook, sections))
	}
	return responses, nil
}

func (s *notebookService) GetOne(ctx context.Context, userId, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwnedNotebook(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	sections, err := s.loadSections(ctx, uow, notebook.Id)
	if err != nil {
		return nil, err
	}

	res := toNotebookResponse(notebook, sections)
	return &res, nil
}

func (s *notebookService) loadSections(ctx context.Context, uow unitofwork.UnitOfWork, notebookId uuid.UUID) ([]dto.SectionResponse, error) {
	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebookId},
		specification.OrderByPosition{},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to list sections", err)
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

func (s *notebookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("notebook title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwnedNotebook(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	duplicate, err := uow.NotebookRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.TitleIEquals{Title: title},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to check notebook title", err)
	}
	if duplicate != nil && duplicate.Id != notebook.Id {
		return nil, apperror.NewConflict("a notebook with this title already exists")
	}

	now := s.now()
	notebook.Title = title
	notebook.UpdatedAt = &now
	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, apperror.NewInternal("failed to update notebook", err)
	}

	sections, err := s.loadSections(ctx, uow, notebook.Id)
	if err != nil {
		return nil, err
	}

	res := toNotebookResponse(notebook, sections)
	return &res, nil
}

// Delete removes the notebook and every section and page under it, leaf to
// root inside one transaction.
func (s *notebookService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notebook, err := findOwnedNotebook(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	sections, err := uow.SectionRepository().FindAll(ctx, specification.ByNotebookID{NotebookID: notebook.Id})
	if err != nil {
		return apperror.NewInternal("failed to list sections", err)
	}
	sectionIds := make([]uuid.UUID, 0, len(sections))
	for _, section := range sections {
		sectionIds = append(sectionIds, section.Id)
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.NewInternal("failed to start transaction", err)
	}
	defer uow.Rollback()

	if len(sectionIds) > 0 {
		if err := uow.PageRepository().DeleteBySectionIds(ctx, sectionIds); err != nil {
			return apperror.NewInternal("failed to delete pages", err)
		}
	}
	if err := uow.SectionRepository().DeleteByNotebookId(ctx, notebook.Id); err != nil {
		return apperror.NewInternal("failed to delete sections", err)
	}
	if err := uow.NotebookRepository().Delete(ctx, notebook.Id); err != nil {
		return apperror.NewInternal("failed to delete notebook", err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.NewInternal("failed to commit delete", err)
	}
	return nil
}
