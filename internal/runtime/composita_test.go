package runtime_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/aretw0/composita/internal/runtime"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(a, b, f1 float64, n int) domain.Params {
	return domain.Params{A: a, B: b, F1: f1, MaxDegree: n, Seed: domain.SeedBinomial}
}

func TestComposita_ZeroAboveDiagonal(t *testing.T) {
	p := params(1.5, -2, 3, 10)
	memo := runtime.NewMemo()
	for n := 0; n <= 6; n++ {
		for k := n + 1; k <= 8; k++ {
			v, err := runtime.Composita(n, k, p, memo)
			require.NoError(t, err)
			assert.Zero(t, v, "A(%d,%d)", n, k)
		}
	}
}

func TestComposita_DiagonalIsHalfPower(t *testing.T) {
	memo := runtime.NewMemo()
	for n := 1; n <= 12; n++ {
		v, err := runtime.Composita(n, n, params(1, 1, 1, 12), memo)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	}

	memo = runtime.NewMemo()
	for n := 1; n <= 12; n++ {
		v, err := runtime.Composita(n, n, params(1, 1, 4, 12), memo)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(2, float64(n)), v, 1e-9)
	}
}

func TestCoefficients_Scenarios(t *testing.T) {
	ctx := context.Background()

	got, err := runtime.Coefficients(ctx, params(1, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)

	got, err = runtime.Coefficients(ctx, params(1, 1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, got)

	// A(3,2) = 3/2, A(3,1) = (3 - 1.5·1)/2
	got, err = runtime.Coefficients(ctx, params(1, 1, 1, 3))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 0.75}, got, 1e-12)
}

func TestCoefficients_MatchesMemoizedRecursion(t *testing.T) {
	cases := []domain.Params{
		params(1, 1, 1, 60),
		params(0.5, 2, 3, 40),
		params(-1.25, 0.75, 2, 40),
		{A: 2, B: 1, F1: 1, MaxDegree: 40, Seed: domain.SeedComposita},
	}
	for _, p := range cases {
		table, err := runtime.Coefficients(context.Background(), p)
		require.NoError(t, err)

		memo := runtime.NewMemo()
		rec, err := runtime.CoefficientsMemo(p, memo)
		require.NoError(t, err)

		assert.Equal(t, rec, table, "params %+v", p)
	}
}

func TestCoefficients_BothEnginesReportOverflow(t *testing.T) {
	p := domain.Params{A: 2, B: 1, F1: 1, MaxDegree: 50, Seed: domain.SeedComposita}

	_, err := runtime.Coefficients(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)

	_, err = runtime.CoefficientsMemo(p, runtime.NewMemo())
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)
}

func TestCoefficientsMemo_EachKeyComputedOnce(t *testing.T) {
	const n = 100
	memo := runtime.NewMemo()
	_, err := runtime.CoefficientsMemo(params(1, 1, 1, n), memo)
	require.NoError(t, err)

	// Diagonal cells (m, m) for m >= 2 are closed-form and never memoized.
	assert.Equal(t, n*(n+1)/2-(n-1), memo.Len())
	assert.Equal(t, 1, memo.MaxWrites(), "no (n,k) may be computed twice")
	assert.Equal(t, 1, memo.Writes(runtime.Key{N: n, K: 1}))
	assert.Positive(t, memo.Hits())
}

func TestTable_Len(t *testing.T) {
	tbl, err := runtime.NewTable(params(1, 1, 1, 100))
	require.NoError(t, err)
	require.NoError(t, tbl.Fill(context.Background()))
	assert.Equal(t, 5050, tbl.Len())
	assert.Zero(t, tbl.At(3, 7))
	assert.Equal(t, 1.0, tbl.At(42, 42))
}

func TestCoefficients_PrefixIndependentOfHistory(t *testing.T) {
	ctx := context.Background()
	short, err := runtime.Coefficients(ctx, params(1, 1, 1, 30))
	require.NoError(t, err)
	long, err := runtime.Coefficients(ctx, params(1, 1, 1, 60))
	require.NoError(t, err)
	assert.Equal(t, short, long[:30])

	again, err := runtime.Coefficients(ctx, params(1, 1, 1, 30))
	require.NoError(t, err)
	assert.Equal(t, short, again)
}

func TestCoefficients_InvalidConfiguration(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := runtime.Coefficients(context.Background(), params(1, 1, 1, n))
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	}
	_, err := runtime.Coefficients(context.Background(), params(math.NaN(), 1, 1, 5))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	_, err = runtime.Coefficients(context.Background(), params(1, 1, math.Inf(1), 5))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestCoefficients_DomainErrors(t *testing.T) {
	t.Run("NegativeF1OddPower", func(t *testing.T) {
		_, err := runtime.Coefficients(context.Background(), params(1, 1, -1, 3))
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 1, de.N)
		assert.Equal(t, 1, de.K)
	})

	t.Run("ZeroDenominator", func(t *testing.T) {
		_, err := runtime.Coefficients(context.Background(), params(1, 1, 0, 3))
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 2, de.N)
		assert.Equal(t, 1, de.K)
	})

	t.Run("ZeroBaseNegativePower", func(t *testing.T) {
		_, err := runtime.Coefficients(context.Background(), params(0, 1, 1, 3))
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 3, de.N)
		assert.Equal(t, 1, de.K)
		assert.NotErrorIs(t, err, domain.ErrNumericOverflow)
	})

	t.Run("RecursiveSolverAgrees", func(t *testing.T) {
		_, err := runtime.CoefficientsMemo(params(0, 1, 1, 3), runtime.NewMemo())
		assert.ErrorIs(t, err, domain.ErrDomain)
	})
}

func TestCoefficients_OverflowIsDistinct(t *testing.T) {
	_, err := runtime.Coefficients(context.Background(), params(1e300, 1e300, 1, 5))
	assert.ErrorIs(t, err, domain.ErrNumericOverflow)
	assert.NotErrorIs(t, err, domain.ErrDomain)
}

func TestCoefficients_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runtime.Coefficients(ctx, params(1, 1, 1, 10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComposita_RecursionLimit(t *testing.T) {
	n := runtime.MaxRecursionDepth + 10
	_, err := runtime.Composita(n, 1, params(1, 1, 1, n), runtime.NewMemo())
	assert.ErrorIs(t, err, domain.ErrRecursionLimit)
}

func TestComposita_NegativeIndices(t *testing.T) {
	_, err := runtime.Composita(-1, 0, params(1, 1, 1, 1), runtime.NewMemo())
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
