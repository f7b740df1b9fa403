package domain

import (
	"fmt"
	"math"
	"strconv"
)

// SeedKind selects the closed form used for the seed coefficients F^Δ(n, k).
type SeedKind string

const (
	// SeedBinomial uses C(n,k)·a^(2k−n)·b^(n−k).
	SeedBinomial SeedKind = "binomial"
	// SeedComposita uses C(k,n−k)·a^(2k−n)·b^(n−k), the composita of a·x + b·x².
	SeedComposita SeedKind = "composita"
)

// Default parameters of a run.
const (
	DefaultA         = 1.0
	DefaultB         = 1.0
	DefaultF1        = 1.0
	DefaultMaxDegree = 100
)

// Params holds the immutable inputs of a single computation.
type Params struct {
	A         float64  `json:"a" yaml:"a" mapstructure:"a"`
	B         float64  `json:"b" yaml:"b" mapstructure:"b"`
	F1        float64  `json:"f1" yaml:"f1" mapstructure:"f1"`
	MaxDegree int      `json:"max_degree" yaml:"max_degree" mapstructure:"max_degree"`
	Seed      SeedKind `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
}

// DefaultParams returns the parameters of the reference invocation.
func DefaultParams() Params {
	return Params{
		A:         DefaultA,
		B:         DefaultB,
		F1:        DefaultF1,
		MaxDegree: DefaultMaxDegree,
		Seed:      SeedBinomial,
	}
}

// Validate rejects parameters that cannot start a computation.
// A maxDegreeLimit <= 0 disables the degree budget.
func (p Params) Validate(maxDegreeLimit int) error {
	if p.MaxDegree <= 0 {
		return &ConfigError{Field: "max_degree", Value: p.MaxDegree, Reason: "must be a positive integer"}
	}
	if maxDegreeLimit > 0 && p.MaxDegree > maxDegreeLimit {
		return &ConfigError{Field: "max_degree", Value: p.MaxDegree, Reason: fmt.Sprintf("exceeds limit %d", maxDegreeLimit)}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"a", p.A}, {"b", p.B}, {"f1", p.F1}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigError{Field: f.name, Value: f.v, Reason: "must be finite"}
		}
	}
	switch p.Seed {
	case "", SeedBinomial, SeedComposita:
	default:
		return &ConfigError{Field: "seed", Value: p.Seed, Reason: "unknown seed kind"}
	}
	return nil
}

// SeedKindOrDefault resolves an empty seed to SeedBinomial.
func (p Params) SeedKindOrDefault() SeedKind {
	if p.Seed == "" {
		return SeedBinomial
	}
	return p.Seed
}

// Fingerprint is a canonical key for caching solutions of p.
// Floats are rendered with the shortest exact representation.
func (p Params) Fingerprint() string {
	return fmt.Sprintf("%s:%s:%s:%d:%s",
		strconv.FormatFloat(p.A, 'g', -1, 64),
		strconv.FormatFloat(p.B, 'g', -1, 64),
		strconv.FormatFloat(p.F1, 'g', -1, 64),
		p.MaxDegree,
		p.SeedKindOrDefault(),
	)
}
