package runtime

import (
	"fmt"
	"math"

	"github.com/aretw0/composita/pkg/domain"
)

// halfPower returns f1^(e/2). ok is false when the value is not real (negative f1, odd e).
func halfPower(f1 float64, e int) (v float64, ok bool) {
	if f1 < 0 && e%2 != 0 {
		return 0, false
	}
	return math.Pow(f1, float64(e)/2), true
}

// diagonal returns A^Δ(n, n) = f1^(n/2).
func diagonal(n int, f1 float64) (float64, error) {
	v, ok := halfPower(f1, n)
	if !ok {
		return 0, &domain.DomainError{N: n, K: n, Reason: fmt.Sprintf("f1=%v raised to %d/2 is not real", f1, n)}
	}
	if !finite(v) {
		return 0, &domain.OverflowError{N: n, K: n, Value: v}
	}
	return v, nil
}

// offDiagonal returns A^Δ(n, k) for n > k, given the convolution sum over k < m < n.
func offDiagonal(n, k int, sum float64, p domain.Params, seed SeedFunc) (float64, error) {
	fnk, err := seed(n, k, p.A, p.B)
	if err != nil {
		return 0, err
	}
	hn, okN := halfPower(p.F1, n)
	hk, okK := halfPower(p.F1, k)
	if !okN || !okK {
		return 0, &domain.DomainError{N: n, K: k, Reason: fmt.Sprintf("denominator f1^(%d/2) + f1^(%d/2) is not real for f1=%v", n, k, p.F1)}
	}
	den := hn + hk
	if den == 0 {
		return 0, &domain.DomainError{N: n, K: k, Reason: fmt.Sprintf("zero denominator f1^(%d/2) + f1^(%d/2) for f1=%v", n, k, p.F1)}
	}
	v := (fnk - sum) / den
	if !finite(v) || !finite(sum) {
		return 0, &domain.OverflowError{N: n, K: k, Value: v}
	}
	return v, nil
}
