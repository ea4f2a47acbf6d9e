package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/pkg/apierrors"
)

// Store is the authoritative in-memory collection for one entity kind,
// addressable by identifier. A single exclusive lock guards every operation,
// so each one is atomic with respect to the others on the same store.
// Sequences spanning multiple stores are not transactional.
type Store[T entity.Entity] struct {
	mu     sync.RWMutex
	items  []T
	kind   string
	logger *logrus.Logger
}

// NewStore creates an empty store. kind names the entity kind in log fields.
func NewStore[T entity.Entity](kind string, logger *logrus.Logger) *Store[T] {
	return &Store[T]{kind: kind, logger: logger}
}

// Save appends the entity to the collection. It does not check identifier or
// business-key uniqueness; callers that need uniqueness enforce it one layer
// up. Calling Save twice with the same entity appends twice.
func (s *Store[T]) Save(e T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return e, nil
}

// Update replaces the entity with the same identifier in place, preserving
// its position. An unknown identifier is a no-op reported as not-found.
func (s *Store[T]) Update(e T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == e.EntityID() {
			s.items[i] = e
			return e, nil
		}
	}
	var zero T
	return zero, apierrors.NotFoundf("there is no %s with the entityId %s", s.kind, e.EntityID())
}

// GetByID returns the entity with the given identifier.
func (s *Store[T]) GetByID(id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, apierrors.NotFoundf("there is no %s with the entityId %s", s.kind, id)
}

// GetAll returns a snapshot of the collection in insertion order.
func (s *Store[T]) GetAll() ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Remove deletes the first entity matching the identifier. An unknown
// identifier is a no-op reported as not-found.
func (s *Store[T]) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return apierrors.NotFoundf("there is no %s with the entityId %s", s.kind, id)
}

// Len reports the current number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
