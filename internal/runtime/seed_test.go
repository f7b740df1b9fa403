package runtime_test

import (
	"testing"

	"github.com/aretw0/composita/internal/runtime"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTerm(t *testing.T) {
	v, err := runtime.SeedTerm(2, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = runtime.SeedTerm(4, 3, 2, 3)
	require.NoError(t, err)
	// C(4,3)·2^2·3^1
	assert.Equal(t, 48.0, v)

	v, err = runtime.SeedTerm(1, 2, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = runtime.SeedTerm(3, 1, 0, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)

	// 0^0 is 1: the a=0 case only fails for negative exponents.
	v, err = runtime.SeedTerm(2, 1, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestCompositaSeedTerm(t *testing.T) {
	v, err := runtime.CompositaSeedTerm(5, 2, 0, 1)
	require.NoError(t, err)
	assert.Zero(t, v, "n > 2k has no composition")

	v, err = runtime.CompositaSeedTerm(3, 2, 2, 3)
	require.NoError(t, err)
	// C(2,1)·2^1·3^1
	assert.Equal(t, 12.0, v)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, runtime.Binomial(0, 0))
	assert.Equal(t, 10.0, runtime.Binomial(5, 2))
	assert.Equal(t, 10.0, runtime.Binomial(5, 3))
	assert.Zero(t, runtime.Binomial(3, 4))
	assert.Zero(t, runtime.Binomial(3, -1))
	assert.Equal(t, float64(118264581564861424), runtime.Binomial(60, 30))
	assert.InEpsilon(t, 1.0089134454556419e29, runtime.Binomial(100, 50), 1e-12)
}
