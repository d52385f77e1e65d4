package unitofwork

import (
	"context"

	"notehive-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to a single request, optionally inside a
// store transaction. Cascading hierarchy mutations run between Begin and
// Commit so no partial object graph survives a mid-chain failure.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	SectionRepository() contract.SectionRepository
	PageRepository() contract.PageRepository
}
