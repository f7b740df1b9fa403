package runtime

import (
	"fmt"
	"math"

	"github.com/aretw0/composita/pkg/domain"
	"gonum.org/v1/gonum/stat/combin"
)

// SeedFunc returns the seed coefficient F^Δ(n, k) of the quadratic a·x + b·x².
type SeedFunc func(n, k int, a, b float64) (float64, error)

// SeedFor resolves a seed kind to its closed form.
func SeedFor(kind domain.SeedKind) SeedFunc {
	if kind == domain.SeedComposita {
		return CompositaSeedTerm
	}
	return SeedTerm
}

// SeedTerm returns C(n,k)·a^(2k−n)·b^(n−k) for k <= n and 0 otherwise.
// a = 0 with 2k−n < 0 is a *domain.DomainError.
func SeedTerm(n, k int, a, b float64) (float64, error) {
	if k < 0 || k > n {
		return 0, nil
	}
	return seedPower(n, k, Binomial(n, k), a, b)
}

// CompositaSeedTerm returns C(k,n−k)·a^(2k−n)·b^(n−k), the composita of a·x + b·x².
// It is zero whenever n > 2k, so no negative power of a is ever taken.
func CompositaSeedTerm(n, k int, a, b float64) (float64, error) {
	if k < 0 || k > n {
		return 0, nil
	}
	c := Binomial(k, n-k)
	if c == 0 {
		return 0, nil
	}
	return seedPower(n, k, c, a, b)
}

func seedPower(n, k int, c, a, b float64) (float64, error) {
	exp := 2*k - n
	if a == 0 && exp < 0 {
		return 0, &domain.DomainError{N: n, K: k, Reason: fmt.Sprintf("a=0 raised to negative power %d", exp)}
	}
	v := c * math.Pow(a, float64(exp)) * math.Pow(b, float64(n-k))
	if !finite(v) {
		return 0, &domain.OverflowError{N: n, K: k, Value: v}
	}
	return v, nil
}

// exactBinomialMax is the largest n for which combin.Binomial cannot overflow int64.
const exactBinomialMax = 60

// Binomial returns C(n, k) as a float64, 0 outside 0 <= k <= n.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if n <= exactBinomialMax {
		return float64(combin.Binomial(n, k))
	}
	if k > n-k {
		k = n - k
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}
	return res
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
