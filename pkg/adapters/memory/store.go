package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/composita/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Solution
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Solution),
	}
}

// Save persists a copy of the solution in memory.
func (s *Store) Save(ctx context.Context, key string, sol *domain.Solution) error {
	copied := sol.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves the solution from memory.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sol, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSolutionNotFound
	}

	// Copy on read so callers can't mutate the cached slice.
	return sol.Clone(), nil
}

// Delete removes the solution.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns cached keys in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
