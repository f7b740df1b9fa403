package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/composita/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultStoreContract runs a suite of tests to verify that a ResultStore implementation
// adheres to the defined interface contract.
func RunResultStoreContract(t *testing.T, store ResultStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	newSolution := func() *domain.Solution {
		p := domain.DefaultParams()
		p.MaxDegree = 3
		return &domain.Solution{
			Params:       p,
			Coefficients: []float64{1, 1, 0.75},
			MemoEntries:  6,
			Elapsed:      time.Millisecond,
			ComputedAt:   time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		sol := newSolution()
		err := store.Save(ctx, key, sol)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sol.Coefficients, loaded.Coefficients)
		assert.Equal(t, sol.Params, loaded.Params)
		assert.Equal(t, sol.MemoEntries, loaded.MemoEntries)
		assert.True(t, sol.ComputedAt.Equal(loaded.ComputedAt))
	})

	t.Run("Load is isolated from caller mutation", func(t *testing.T) {
		sol := newSolution()
		require.NoError(t, store.Save(ctx, key, sol))
		sol.Coefficients[0] = 42

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 1.0, loaded.Coefficients[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, key, newSolution())
		require.NoError(t, err)

		err = store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound, "Load after Delete should return ErrSolutionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, newSolution())
		_ = store.Save(ctx, id2, newSolution())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
