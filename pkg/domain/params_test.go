package domain_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aretw0/composita/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, domain.DefaultParams().Validate(0))

	cases := []struct {
		name  string
		p     domain.Params
		limit int
		field string
	}{
		{"ZeroDegree", domain.Params{A: 1, B: 1, F1: 1, MaxDegree: 0}, 0, "max_degree"},
		{"NegativeDegree", domain.Params{A: 1, B: 1, F1: 1, MaxDegree: -1}, 0, "max_degree"},
		{"OverBudget", domain.Params{A: 1, B: 1, F1: 1, MaxDegree: 11}, 10, "max_degree"},
		{"NaN", domain.Params{A: math.NaN(), B: 1, F1: 1, MaxDegree: 1}, 0, "a"},
		{"Inf", domain.Params{A: 1, B: math.Inf(-1), F1: 1, MaxDegree: 1}, 0, "b"},
		{"InfF1", domain.Params{A: 1, B: 1, F1: math.Inf(1), MaxDegree: 1}, 0, "f1"},
		{"Seed", domain.Params{A: 1, B: 1, F1: 1, MaxDegree: 1, Seed: "cubic"}, 0, "seed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate(tc.limit)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			var ce *domain.ConfigError
			if assert.True(t, errors.As(err, &ce)) {
				assert.Equal(t, tc.field, ce.Field)
			}
		})
	}
}

func TestParams_Fingerprint(t *testing.T) {
	p := domain.Params{A: 1, B: 0.1, F1: 2, MaxDegree: 7}
	assert.Equal(t, "1:0.1:2:7:binomial", p.Fingerprint())
	p.Seed = domain.SeedComposita
	assert.Equal(t, "1:0.1:2:7:composita", p.Fingerprint())
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "domain_error", domain.ErrorKind(&domain.DomainError{N: 2, K: 1}))
	assert.Equal(t, "numeric_overflow", domain.ErrorKind(&domain.OverflowError{N: 2, K: 1}))
	assert.Equal(t, "invalid_configuration", domain.ErrorKind(&domain.ConfigError{Field: "a"}))
	assert.Equal(t, "canceled", domain.ErrorKind(fmt.Errorf("fill interrupted: %w", context.DeadlineExceeded)))
	assert.Equal(t, "internal", domain.ErrorKind(errors.New("x")))
}

func TestSolution_Latex(t *testing.T) {
	s := &domain.Solution{Coefficients: []float64{1, 0.75}}
	assert.Equal(t, "A(x) = 1.0000x^{1} + 0.7500x^{2}", s.Latex(4))
	assert.Equal(t, "A(x) = Coefficients could not be calculated.", (&domain.Solution{}).Latex(4))
}

func TestSolution_Clone(t *testing.T) {
	s := &domain.Solution{Coefficients: []float64{1, 2}}
	c := s.Clone()
	c.Coefficients[0] = 9
	assert.Equal(t, 1.0, s.Coefficients[0])
}
