package service_test

import (
	"context"
	"errors"
	"testing"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new notebook comes with one starter section and page", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		res, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)
		assert.Equal(t, "Work", res.Title)
		require.Len(t, res.Sections, 1)
		assert.Equal(t, "Untitled Section", res.Sections[0].Title)
		require.Len(t, res.Sections[0].Pages, 1)
		assert.Equal(t, "Untitled Page", res.Sections[0].Pages[0].Title)
	})

	t.Run("title uniqueness is case-insensitive per owner", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		_, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		_, err = f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "WORK"})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("different owners can share a title", func(t *testing.T) {
		f := newFixture(t)
		first := f.registerVerified(t, "a@example.com", "pw")
		second := f.registerVerified(t, "b@example.com", "pw")

		_, err := f.notebooks.Create(ctx, first.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)
		_, err = f.notebooks.Create(ctx, second.Id, &dto.CreateNotebookRequest{Title: "Work"})
		assert.NoError(t, err)
	})

	t.Run("blank title is invalid", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		_, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "   "})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("a mid-chain failure leaves nothing behind", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		f.store.PageCreateErr = errors.New("boom")
		_, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Doomed"})
		assert.True(t, apperror.IsKind(err, apperror.KindInternal))
		f.store.PageCreateErr = nil

		_, err = f.notebooks.GetAll(ctx, owner.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestNotebookService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list is not found", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		_, err := f.notebooks.GetAll(ctx, owner.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("nests sections and pages under their notebook", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		created, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		all, err := f.notebooks.GetAll(ctx, owner.Id)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, created.Id, all[0].Id)
		require.Len(t, all[0].Sections, 1)
		assert.Len(t, all[0].Sections[0].Pages, 1)
	})

	t.Run("owners only see their own notebooks", func(t *testing.T) {
		f := newFixture(t)
		first := f.registerVerified(t, "a@example.com", "pw")
		second := f.registerVerified(t, "b@example.com", "pw")

		_, err := f.notebooks.Create(ctx, first.Id, &dto.CreateNotebookRequest{Title: "Mine"})
		require.NoError(t, err)

		_, err = f.notebooks.GetAll(ctx, second.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestNotebookService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renames a notebook", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		created, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		updated, err := f.notebooks.Update(ctx, owner.Id, &dto.UpdateNotebookRequest{Id: created.Id, Title: "Personal"})
		require.NoError(t, err)
		assert.Equal(t, "Personal", updated.Title)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("rename cannot collide with another notebook", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		_, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)
		other, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Personal"})
		require.NoError(t, err)

		_, err = f.notebooks.Update(ctx, owner.Id, &dto.UpdateNotebookRequest{Id: other.Id, Title: "work"})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("renaming to its own title is fine", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		created, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		_, err = f.notebooks.Update(ctx, owner.Id, &dto.UpdateNotebookRequest{Id: created.Id, Title: "work"})
		assert.NoError(t, err)
	})

	t.Run("someone else's notebook reads as missing", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")
		intruder := f.registerVerified(t, "b@example.com", "pw")

		created, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		_, err = f.notebooks.Update(ctx, intruder.Id, &dto.UpdateNotebookRequest{Id: created.Id, Title: "Stolen"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestNotebookService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade removes every descendant", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		created, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Work"})
		require.NoError(t, err)

		// Grow the tree beyond the starter pair.
		section, err := f.sections.Create(ctx, owner.Id, created.Id, &dto.CreateSectionRequest{Title: "Drafts"})
		require.NoError(t, err)
		_, err = f.pages.Create(ctx, owner.Id, section.Id, &dto.CreatePageRequest{Title: "Idea"})
		require.NoError(t, err)

		require.NoError(t, f.notebooks.Delete(ctx, owner.Id, created.Id))

		_, err = f.notebooks.GetAll(ctx, owner.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		_, err = f.pages.GetOne(ctx, owner.Id, section.Pages[0].Id)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("unknown notebook is not found", func(t *testing.T) {
		f := newFixture(t)
		owner := f.registerVerified(t, "a@example.com", "pw")

		err := f.notebooks.Delete(ctx, owner.Id, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

// The end-to-end shape of the happy path: register, verify, log in, create,
// delete, observe the empty list.
func TestNotebookLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	owner := f.registerVerified(t, "traveler@example.com", "pw")

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "traveler@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	trip, err := f.notebooks.Create(ctx, owner.Id, &dto.CreateNotebookRequest{Title: "Trip"})
	require.NoError(t, err)

	all, err := f.notebooks.GetAll(ctx, owner.Id)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, f.notebooks.Delete(ctx, owner.Id, trip.Id))

	_, err = f.notebooks.GetAll(ctx, owner.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
