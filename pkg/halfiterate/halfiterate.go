// Package halfiterate approximates the half iterate g of F(x) = x² + 1, the function with g(g(x)) = F(x).
//
// The approximation pushes x forward through F a number of times, seeds the far
// end with |x|^√2 and walks back with g(x) = sqrt(g(F(x)) − 1).
package halfiterate

import (
	"fmt"
	"math"
)

// MaxIterations bounds the recursion depth of Compute.
// F overflows float64 after a handful of steps for |x| > 1, so larger values add nothing.
const MaxIterations = 1024

type key struct {
	x          float64
	iterations int
}

// Approximator memoizes g per (x, iterations). Not safe for concurrent use.
type Approximator struct {
	memo map[key]float64
}

// New returns an empty approximator.
func New() *Approximator {
	return &Approximator{memo: make(map[key]float64)}
}

// Compute returns the approximation of g(x) after the given number of iterations.
// It returns NaN when a radicand is negative.
func (a *Approximator) Compute(x float64, iterations int) float64 {
	k := key{x: x, iterations: iterations}
	if v, ok := a.memo[k]; ok {
		return v
	}

	var v float64
	if iterations <= 0 {
		v = math.Pow(math.Abs(x), math.Sqrt2)
	} else {
		sq := a.Compute(x*x+1, iterations-1) - 1
		if sq < 0 {
			v = math.NaN()
		} else {
			v = math.Sqrt(sq)
		}
	}
	a.memo[k] = v
	return v
}

// Len returns the number of memoized values.
func (a *Approximator) Len() int { return len(a.memo) }

// Reset clears the memo.
func (a *Approximator) Reset() { clear(a.memo) }

// Series evaluates every x with a fresh memo.
func Series(xs []float64, iterations int) ([]float64, error) {
	if iterations > MaxIterations {
		return nil, fmt.Errorf("iterations %d exceeds limit %d", iterations, MaxIterations)
	}
	a := New()
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = a.Compute(x, iterations)
	}
	return out, nil
}

// Orbit returns x0, F(x0), F(F(x0)), ... with steps applications of F.
func Orbit(x0 float64, steps int) []float64 {
	if steps < 0 {
		steps = 0
	}
	out := make([]float64, 0, steps+1)
	x := x0
	for i := 0; i <= steps; i++ {
		out = append(out, x)
		x = x*x + 1
	}
	return out
}
