package ports

import (
	"context"

	"github.com/aretw0/composita/pkg/domain"
)

// ResultStore defines the interface for caching computed solutions.
// Solutions are a pure function of their parameters, so a store is a cache,
// never the source of truth.
type ResultStore interface {
	// Save persists the solution under key.
	Save(ctx context.Context, key string, sol *domain.Solution) error

	// Load retrieves the solution for key.
	// Returns domain.ErrSolutionNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Solution, error)

	// Delete removes the solution for key.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently held.
	List(ctx context.Context) ([]string, error)
}
