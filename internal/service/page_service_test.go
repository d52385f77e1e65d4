package service_test

import (
	"context"
	"testing"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSection registers an owner and carves out a notebook, returning the
// owner id and the starter section.
func setupSection(t *testing.T, f *fixture) (uuid.UUID, dto.SectionResponse) {
	t.Helper()
	owner := f.registerVerified(t, "a@example.com", "pw")
	notebook, err := f.notebooks.Create(context.Background(), owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
	require.NoError(t, err)
	return owner.Id, notebook.Sections[0]
}

func TestPageService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a page at the next position", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		page, err := f.pages.Create(ctx, ownerId, section.Id, &dto.CreatePageRequest{Title: "Ideas", Content: "first"})
		require.NoError(t, err)
		assert.Equal(t, "Ideas", page.Title)
		assert.Equal(t, "first", page.Content)
		assert.Equal(t, 1, page.Position) // after the starter page
	})

	t.Run("blank title falls back to the default", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		page, err := f.pages.Create(ctx, ownerId, section.Id, &dto.CreatePageRequest{Title: "  "})
		require.NoError(t, err)
		assert.Equal(t, "Untitled Page", page.Title)
	})

	t.Run("unknown section is not found", func(t *testing.T) {
		f := newFixture(t)
		ownerId, _ := setupSection(t, f)

		_, err := f.pages.Create(ctx, ownerId, uuid.New(), &dto.CreatePageRequest{Title: "Lost"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestPageService_GetBySection(t *testing.T) {
	ctx := context.Background()

	t.Run("lists pages in position order", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		_, err := f.pages.Create(ctx, ownerId, section.Id, &dto.CreatePageRequest{Title: "Second"})
		require.NoError(t, err)

		pages, err := f.pages.GetBySection(ctx, ownerId, section.Id)
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "Untitled Page", pages[0].Title)
		assert.Equal(t, "Second", pages[1].Title)
	})

	t.Run("empty section is not found", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		require.NoError(t, f.pages.Delete(ctx, ownerId, section.Pages[0].Id))

		_, err := f.pages.GetBySection(ctx, ownerId, section.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestPageService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates title and content", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		updated, err := f.pages.Update(ctx, ownerId, &dto.UpdatePageRequest{
			Id:      section.Pages[0].Id,
			Title:   "Renamed",
			Content: "body",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "body", updated.Content)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("blank title keeps the existing one", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		updated, err := f.pages.Update(ctx, ownerId, &dto.UpdatePageRequest{
			Id:      section.Pages[0].Id,
			Title:   "",
			Content: "only content changed",
		})
		require.NoError(t, err)
		assert.Equal(t, "Untitled Page", updated.Title)
		assert.Equal(t, "only content changed", updated.Content)
	})

	t.Run("foreign page reads as missing", func(t *testing.T) {
		f := newFixture(t)
		_, section := setupSection(t, f)
		intruder := f.registerVerified(t, "b@example.com", "pw")

		_, err := f.pages.Update(ctx, intruder.Id, &dto.UpdatePageRequest{Id: section.Pages[0].Id, Title: "Stolen"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestPageService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a single page", func(t *testing.T) {
		f := newFixture(t)
		ownerId, section := setupSection(t, f)

		require.NoError(t, f.pages.Delete(ctx, ownerId, section.Pages[0].Id))

		_, err := f.pages.GetOne(ctx, ownerId, section.Pages[0].Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("unknown page is not found", func(t *testing.T) {
		f := newFixture(t)
		ownerId, _ := setupSection(t, f)

		err := f.pages.Delete(ctx, ownerId, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
