package halfiterate_test

import (
	"math"
	"testing"

	"github.com/aretw0/composita/pkg/halfiterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_BaseCase(t *testing.T) {
	a := halfiterate.New()
	assert.InDelta(t, math.Pow(2, math.Sqrt2), a.Compute(-2, 0), 1e-12)
	assert.Equal(t, 0.0, a.Compute(0, -3))
}

func TestCompute_OneIteration(t *testing.T) {
	a := halfiterate.New()
	// g(1) = sqrt(2^√2 − 1)
	want := math.Sqrt(math.Pow(2, math.Sqrt2) - 1)
	assert.InDelta(t, want, a.Compute(1, 1), 1e-12)
	assert.Equal(t, 2, a.Len())
}

func TestCompute_Radicand(t *testing.T) {
	a := halfiterate.New()
	// 1^√2 − 1 = 0 at the boundary.
	assert.Equal(t, 0.0, a.Compute(0, 1))
	assert.True(t, math.IsNaN(a.Compute(math.NaN(), 2)))
}

func TestCompute_ApproximatesHalfIterate(t *testing.T) {
	a := halfiterate.New()
	for _, x := range []float64{0.5, 1, 1.5} {
		g := a.Compute(x, 6)
		gg := a.Compute(g, 6)
		assert.InEpsilon(t, x*x+1, gg, 1e-3, "g(g(%v))", x)
	}
}

func TestSeries(t *testing.T) {
	out, err := halfiterate.Series([]float64{-1, 0, 1}, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, out[0], out[2], "g is even")

	_, err = halfiterate.Series([]float64{1}, halfiterate.MaxIterations+1)
	assert.Error(t, err)
}

func TestOrbit(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 5, 26, 677, 458330}, halfiterate.Orbit(1, 5))
	assert.Equal(t, []float64{3}, halfiterate.Orbit(3, -1))
}

func TestReset(t *testing.T) {
	a := halfiterate.New()
	a.Compute(2, 3)
	require.Positive(t, a.Len())
	a.Reset()
	assert.Zero(t, a.Len())
}
