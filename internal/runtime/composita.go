package runtime

import (
	"fmt"

	"github.com/aretw0/composita/pkg/domain"
)

// MaxRecursionDepth bounds the call depth of the recursive solver.
// Depth grows with n, so this also bounds the degree it can reach.
const MaxRecursionDepth = 4096

// Composita returns A^Δ(n, k) using the memoized recursive definition.
// Every key is stored in memo before returning, so a later call with the same
// key (or any call reaching it as a subproblem) is answered from the table.
func Composita(n, k int, p domain.Params, memo *Memo) (float64, error) {
	if n < 0 || k < 0 {
		return 0, &domain.ConfigError{Field: "(n,k)", Value: Key{N: n, K: k}, Reason: "indices must be non-negative"}
	}
	r := &recursive{params: p, seed: SeedFor(p.SeedKindOrDefault()), memo: memo}
	return r.composita(n, k, 0)
}

// CoefficientsMemo computes A^Δ(n, 1) for n = 1..MaxDegree sharing one memo across all n.
func CoefficientsMemo(p domain.Params, memo *Memo) ([]float64, error) {
	if err := p.Validate(0); err != nil {
		return nil, err
	}
	out := make([]float64, 0, p.MaxDegree)
	for n := 1; n <= p.MaxDegree; n++ {
		v, err := Composita(n, 1, p, memo)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", n, err)
		}
		out = append(out, v)
	}
	return out, nil
}

type recursive struct {
	params domain.Params
	seed   SeedFunc
	memo   *Memo
}

func (r *recursive) composita(n, k, depth int) (float64, error) {
	key := Key{N: n, K: k}
	if v, ok := r.memo.Lookup(key); ok {
		return v, nil
	}
	if depth > MaxRecursionDepth {
		return 0, fmt.Errorf("composita(%d, %d) at depth %d: %w", n, k, depth, domain.ErrRecursionLimit)
	}

	var (
		result float64
		err    error
	)
	switch {
	case n == k:
		result, err = diagonal(n, r.params.F1)
	case n > k:
		sum := 0.0
		for m := k + 1; m < n; m++ {
			left, err := r.composita(n, m, depth+1)
			if err != nil {
				return 0, err
			}
			right, err := r.composita(m, k, depth+1)
			if err != nil {
				return 0, err
			}
			sum += left * right
		}
		result, err = offDiagonal(n, k, sum, r.params, r.seed)
	}
	if err != nil {
		return 0, err
	}

	r.memo.Store(key, result)
	return result, nil
}
