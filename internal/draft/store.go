package draft

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/pampa-pos/dashboard/internal/model"
)

// ErrNotFound is returned when a draft id is unknown, usually because
// the draft was already submitted or discarded.
var ErrNotFound = errors.New("draft not found")

// Store keeps open drafts in memory, keyed by their uuid. Drafts are
// process-local and never persisted: closing or submitting one discards
// it.
type Store struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[uuid.UUID]*Draft)}
}

// Create opens a draft for a new order and returns a snapshot of it.
func (s *Store) Create() Draft {
	d := New()
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d.clone()
}

// CreateForEdit opens a draft pre-filled from an existing order.
func (s *Store) CreateForEdit(o model.Order) Draft {
	d := NewForEdit(o)
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d.clone()
}

// Get returns a snapshot of a draft.
func (s *Store) Get(id uuid.UUID) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d.clone(), nil
}

// Mutate runs fn against a draft under the store lock and returns the
// resulting snapshot. All slot operations go through here.
func (s *Store) Mutate(id uuid.UUID, fn func(*Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if err := fn(d); err != nil {
		return Draft{}, err
	}
	return d.clone(), nil
}

// Take removes a draft from the store and returns it, for submission.
func (s *Store) Take(id uuid.UUID) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.drafts, id)
	return d, nil
}

// Discard drops a draft without submitting it.
func (s *Store) Discard(id uuid.UUID) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}
