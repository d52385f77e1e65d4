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

type IPageService interface {
	Create(ctx context.Context, userId, sectionId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error)
	GetBySection(ctx context.Context, userId, sectionId uuid.UUID) ([]dto.PageResponse, error)
	GetOne(ctx context.Context, userId, id uuid.UUID) (*dto.PageResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type pageService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewPageService(uowFactory unitofwork.RepositoryFactory) IPageService {
	return &pageService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (s *pageService) Create(ctx context.Context, userId, sectionId uuid.UUID, req *dto.CreatePageRequest) (*dto.PageResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultPageTitle
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := findOwnedSection(ctx, uow, userId, sectionId)
	if err != nil {
		return nil, err
	}

	count, err := uow.PageRepository().Count(ctx, specification.BySectionID{SectionID: section.Id})
	if err != nil {
		return nil, apperror.NewInternal("failed to count pages", err)
	}

	page := &entity.Page{
		Id:        uuid.New(),
		Title:     title,
		Content:   req.Content,
		SectionId: section.Id,
		Position:  int(count),
		CreatedAt: s.now(),
	}
	if err := uow.PageRepository().Create(ctx, page); err != nil {
		return nil, apperror.NewInternal("failed to create page", err)
	}

	res := toPageResponse(page)
	return &res, nil
}

func (s *pageService) GetBySection(ctx context.Context, userId, sectionId uuid.UUID) ([]dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := findOwnedSection(ctx, uow, userId, sectionId)
	if err != nil {
		return nil, err
	}

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.BySectionID{SectionID: section.Id},
		specification.OrderByPosition{},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to list pages", err)
	}
	if len(pages) == 0 {
		return nil, apperror.NewNotFound("no pages found")
	}

	responses := make([]dto.PageResponse, 0, len(pages))
	for _, page := range pages {
		responses = append(responses, toPageResponse(page))
	}
	return responses, nil
}

func (s *pageService) GetOne(ctx context.Context, userId, id uuid.UUID) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := findOwnedPage(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	res := toPageResponse(page)
	return &res, nil
}

func (s *pageService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := findOwnedPage(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		page.Title = title
	}
	page.Content = req.Content
	now := s.now()
	page.UpdatedAt = &now

	if err := uow.PageRepository().Update(ctx, page); err != nil {
		return nil, apperror.NewInternal("failed to update page", err)
	}

	res := toPageResponse(page)
	return &res, nil
}

func (s *pageService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page, err := findOwnedPage(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.PageRepository().Delete(ctx, page.Id); err != nil {
		return apperror.NewInternal("failed to delete page", err)
	}
	return nil
}
