package memory

import (
	"sync"

	"notehive-be/internal/entity"

	"github.com/google/uuid"
)

// Store is a process-local document store backing the memory repositories.
// It mirrors the persistence contracts closely enough to drive the service
// layer in tests and offline development without a database.
type Store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	notebooks map[uuid.UUID]*entity.Notebook
	sections  map[uuid.UUID]*entity.Section
	pages     map[uuid.UUID]*entity.Page

	// PageCreateErr injects a failure into page creation so cascade
	// atomicity can be exercised.
	PageCreateErr error
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*entity.User),
		notebooks: make(map[uuid.UUID]*entity.Notebook),
		sections:  make(map[uuid.UUID]*entity.Section),
		pages:     make(map[uuid.UUID]*entity.Page),
	}
}

type snapshot struct {
	users     map[uuid.UUID]*entity.User
	notebooks map[uuid.UUID]*entity.Notebook
	sections  map[uuid.UUID]*entity.Section
	pages     map[uuid.UUID]*entity.Page
}

func (s *Store) takeSnapshot() *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		users:     make(map[uuid.UUID]*entity.User, len(s.users)),
		notebooks: make(map[uuid.UUID]*entity.Notebook, len(s.notebooks)),
		sections:  make(map[uuid.UUID]*entity.Section, len(s.sections)),
		pages:     make(map[uuid.UUID]*entity.Page, len(s.pages)),
	}
	for id, u := range s.users {
		snap.users[id] = cloneUser(u)
	}
	for id, n := range s.notebooks {
		snap.notebooks[id] = cloneNotebook(n)
	}
	for id, sec := range s.sections {
		snap.sections[id] = cloneSection(sec)
	}
	for id, p := range s.pages {
		snap.pages[id] = clonePage(p)
	}
	return snap
}

func (s *Store) restoreSnapshot(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.notebooks = snap.notebooks
	s.sections = snap.sections
	s.pages = snap.pages
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func cloneNotebook(n *entity.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func cloneSection(sec *entity.Section) *entity.Section {
	if sec == nil {
		return nil
	}
	clone := *sec
	return &clone
}

func clonePage(p *entity.Page) *entity.Page {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
