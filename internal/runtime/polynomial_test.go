package runtime_test

import (
	"testing"

	"github.com/aretw0/composita/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	assert.Equal(t, 6.0, runtime.Evaluate([]float64{1, 1}, 2))
	assert.Equal(t, 0.0, runtime.Evaluate(nil, 3))
	assert.InDelta(t, 0.5+0.25+0.09375, runtime.Evaluate([]float64{1, 1, 0.75}, 0.5), 1e-12)
	assert.Equal(t, 6.0, runtime.EvaluateSeed(1, 1, 2))
}

func TestLinspace(t *testing.T) {
	xs := runtime.Linspace(-1, 1, 1000)
	assert.Len(t, xs, 1000)
	assert.Equal(t, -1.0, xs[0])
	assert.Equal(t, 1.0, xs[999])

	assert.Nil(t, runtime.Linspace(0, 1, 0))
	assert.Equal(t, []float64{2}, runtime.Linspace(2, 3, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, runtime.Linspace(0, 1, 3))
}

func TestSample(t *testing.T) {
	ys := runtime.Sample([]float64{1}, []float64{-1, 0, 2})
	assert.Equal(t, []float64{-1, 0, 2}, ys)
}
