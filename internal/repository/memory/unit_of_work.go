package memory

import (
	"context"
	"fmt"

	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/unitofwork"
)

// UnitOfWork gives the memory store snapshot-based transactions: Begin copies
// the full store, Rollback restores the copy. Not serializable, but enough to
// verify that cascades leave no partial hierarchy behind.
type UnitOfWork struct {
	store *Store
	snap  *snapshot
}

func NewUnitOfWork(store *Store) unitofwork.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.snap != nil {
		return fmt.Errorf("transaction already started")
	}
	u.snap = u.store.takeSnapshot()
	return nil
}

func (u *UnitOfWork) Commit() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.snap = nil
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.restoreSnapshot(u.snap)
	u.snap = nil
	return nil
}

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *UnitOfWork) NotebookRepository() contract.NotebookRepository {
	return NewNotebookRepository(u.store)
}

func (u *UnitOfWork) SectionRepository() contract.SectionRepository {
	return NewSectionRepository(u.store)
}

func (u *UnitOfWork) PageRepository() contract.PageRepository {
	return NewPageRepository(u.store)
}

type Factory struct {
	store *Store
}

func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return NewUnitOfWork(f.store)
}
