package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/composita/pkg/domain"
)

// Table is the bottom-up form of the composita recurrence.
// It holds A^Δ(n, k) for 1 <= k <= n <= size and is filled one diagonal
// d = n−k at a time, so every cell only reads cells of smaller diagonals.
// Filling costs O(size³) time and O(size²) memory.
type Table struct {
	params domain.Params
	seed   SeedFunc
	size   int
	cells  [][]float64
	filled int
}

// NewTable allocates a table for p.MaxDegree rows.
func NewTable(p domain.Params) (*Table, error) {
	if err := p.Validate(0); err != nil {
		return nil, err
	}
	cells := make([][]float64, p.MaxDegree+1)
	for n := 1; n <= p.MaxDegree; n++ {
		cells[n] = make([]float64, n+1)
	}
	return &Table{
		params: p,
		seed:   SeedFor(p.SeedKindOrDefault()),
		size:   p.MaxDegree,
		cells:  cells,
	}, nil
}

// Fill computes every cell. The context is checked between diagonals.
func (t *Table) Fill(ctx context.Context) error {
	for d := 0; d < t.size; d++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("fill interrupted at diagonal %d: %w", d, err)
		}
		for k := 1; k+d <= t.size; k++ {
			n := k + d
			v, err := t.cell(n, k)
			if err != nil {
				return err
			}
			t.cells[n][k] = v
			t.filled++
		}
	}
	return nil
}

func (t *Table) cell(n, k int) (float64, error) {
	if n == k {
		return diagonal(n, t.params.F1)
	}
	sum := 0.0
	for m := k + 1; m < n; m++ {
		sum += t.cells[n][m] * t.cells[m][k]
	}
	return offDiagonal(n, k, sum, t.params, t.seed)
}

// At returns A^Δ(n, k). Pairs with k > n are zero by definition.
func (t *Table) At(n, k int) float64 {
	if k > n || n < 1 || k < 1 || n > t.size {
		return 0
	}
	return t.cells[n][k]
}

// Len returns the number of cells computed so far.
func (t *Table) Len() int { return t.filled }

// Column returns A^Δ(n, k) for n = 1..size.
func (t *Table) Column(k int) []float64 {
	out := make([]float64, t.size)
	for n := 1; n <= t.size; n++ {
		out[n-1] = t.At(n, k)
	}
	return out
}

// Coefficients returns A[1..p.MaxDegree], the ascending coefficients of A(x).
func Coefficients(ctx context.Context, p domain.Params) ([]float64, error) {
	t, err := NewTable(p)
	if err != nil {
		return nil, err
	}
	if err := t.Fill(ctx); err != nil {
		return nil, err
	}
	return t.Column(1), nil
}
