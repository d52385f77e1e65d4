package service

import (
	"context"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"
	"notehive-be/internal/entity"
	"notehive-be/internal/repository/specification"
	"notehive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultSectionTitle = "Untitled Section"
	defaultPageTitle    = "Untitled Page"
)

func toPageResponse(page *entity.Page) dto.PageResponse {
	return dto.PageResponse{
		Id:        page.Id,
		Title:     page.Title,
		Content:   page.Content,
		SectionId: page.SectionId,
		Position:  page.Position,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
}

func toSectionResponse(section *entity.Section, pages []*entity.Page) dto.SectionResponse {
	res := dto.SectionResponse{
		Id:         section.Id,
		Title:      section.Title,
		NotebookId: section.NotebookId,
		Position:   section.Position,
		Pages:      make([]dto.PageResponse, 0, len(pages)),
		CreatedAt:  section.CreatedAt,
		UpdatedAt:  section.UpdatedAt,
	}
	for _, page := range pages {
		res.Pages = append(res.Pages, toPageResponse(page))
	}
	return res
}

func toNotebookResponse(notebook *entity.Notebook, sections []dto.SectionResponse) dto.NotebookResponse {
	if sections == nil {
		sections = []dto.SectionResponse{}
	}
	return dto.NotebookResponse{
		Id:        notebook.Id,
		Title:     notebook.Title,
		Sections:  sections,
		CreatedAt: notebook.CreatedAt,
		UpdatedAt: notebook.UpdatedAt,
	}
}

// findOwnedNotebook resolves a notebook within the caller's scope. A
// notebook that exists but belongs to someone else is indistinguishable from
// one that does not exist.
func findOwnedNotebook(ctx context.Context, uow unitofwork.UnitOfWork, userId, notebookId uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: notebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to load notebook", err)
	}
	if notebook == nil {
		return nil, apperror.NewNotFound("notebook not found")
	}
	return notebook, nil
}

// findOwnedSection resolves a section through its parent notebook's
// ownership.
func findOwnedSection(ctx context.Context, uow unitofwork.UnitOfWork, userId, sectionId uuid.UUID) (*entity.Section, error) {
	section, err := uow.SectionRepository().FindOne(ctx, specification.ByID{ID: sectionId})
	if err != nil {
		return nil, apperror.NewInternal("failed to load section", err)
	}
	if section == nil {
		return nil, apperror.NewNotFound("section not found")
	}
	if _, err := findOwnedNotebook(ctx, uow, userId, section.NotebookId); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NewNotFound("section not found")
		}
		return nil, err
	}
	return section, nil
}

// findOwnedPage resolves a page through section and notebook ownership.
func findOwnedPage(ctx context.Context, uow unitofwork.UnitOfWork, userId, pageId uuid.UUID) (*entity.Page, error) {
	page, err := uow.PageRepository().FindOne(ctx, specification.ByID{ID: pageId})
	if err != nil {
		return nil, apperror.NewInternal("failed to load page", err)
	}
	if page == nil {
		return nil, apperror.NewNotFound("page not found")
	}
	if _, err := findOwnedSection(ctx, uow, userId, page.SectionId); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NewNotFound("page not found")
		}
		return nil, err
	}
	return page, nil
}
