package registry

import (
	"context"
	"math"
	"math/big"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/internal/runtime"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/factorial"
	"github.com/aretw0/composita/pkg/halfiterate"
)

// Names of the built-in algorithms.
const (
	CompositaSolver      = "compositaSolver"
	NumericalHalfIterate = "numericalHalfIterate"
	Factorial            = "factorial"
)

// SolveOutput is the result of the composita solver.
type SolveOutput struct {
	Coefficients []float64 `json:"coefficients"`
	Latex        string    `json:"latex"`
	MemoEntries  int       `json:"memo_entries"`
	ElapsedMS    float64   `json:"elapsed_ms"`
	Cached       bool      `json:"cached"`
}

// HalfIterateInput configures the half-iterate series.
// XValues wins over the From/To/Points grid when set.
type HalfIterateInput struct {
	XValues    []float64 `mapstructure:"x_values"`
	From       float64   `mapstructure:"from"`
	To         float64   `mapstructure:"to"`
	Points     int       `mapstructure:"points"`
	Iterations int       `mapstructure:"iterations"`
}

// HalfIterateOutput holds the series. Non-finite samples are null.
type HalfIterateOutput struct {
	X []float64  `json:"x"`
	F []*float64 `json:"f"`
}

// FactorialInput selects x for x!.
type FactorialInput struct {
	X int `mapstructure:"x"`
}

// FactorialOutput is x! as a decimal string.
type FactorialOutput struct {
	X      int    `json:"x"`
	Value  string `json:"value"`
	Digits int    `json:"digits"`
}

// MaxFactorialInput bounds x for requests that come from untrusted transports.
const MaxFactorialInput = 100000

// MaxHalfIteratePoints bounds the grid size and the length of x_values.
const MaxHalfIteratePoints = 10000

// DefaultOption configures the built-in algorithms.
type DefaultOption func(*defaults)

type defaults struct {
	onFactorial func(x int)
}

// OnFactorial registers fn to run after every successful factorial.
func OnFactorial(fn func(x int)) DefaultOption {
	return func(d *defaults) { d.onFactorial = fn }
}

// NewDefault returns a registry with the built-in algorithms.
// ledger may be nil, in which case factorials are not recorded.
func NewDefault(solver *composita.Solver, ledger *factorial.Ledger, opts ...DefaultOption) *Registry {
	var cfg defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	r := NewRegistry()

	_ = r.Register(CompositaSolver, func(ctx context.Context, args map[string]any) (any, error) {
		p := domain.DefaultParams()
		if err := Decode(args, &p); err != nil {
			return nil, &domain.ConfigError{Field: "arguments", Value: args, Reason: err.Error()}
		}
		sol, cached, err := solver.Solve(ctx, p)
		if err != nil {
			return nil, err
		}
		return SolveOutput{
			Coefficients: sol.Coefficients,
			Latex:        sol.Latex(4),
			MemoEntries:  sol.MemoEntries,
			ElapsedMS:    float64(sol.Elapsed.Microseconds()) / 1000,
			Cached:       cached,
		}, nil
	}, Metadata{
		Description: "Composita calculator for A(A(x)) = ax^2 + bx.",
		Inputs:      []string{"f1", "a", "b", "max_degree"},
	})

	_ = r.Register(NumericalHalfIterate, func(ctx context.Context, args map[string]any) (any, error) {
		in := HalfIterateInput{From: -5, To: 5, Points: 101, Iterations: 5}
		if err := Decode(args, &in); err != nil {
			return nil, &domain.ConfigError{Field: "arguments", Value: args, Reason: err.Error()}
		}
		if in.Points > MaxHalfIteratePoints {
			return nil, &domain.ConfigError{Field: "points", Value: in.Points, Reason: "too large"}
		}
		if len(in.XValues) > MaxHalfIteratePoints {
			return nil, &domain.ConfigError{Field: "x_values", Value: len(in.XValues), Reason: "too many values"}
		}
		xs := in.XValues
		if len(xs) == 0 {
			xs = runtime.Linspace(in.From, in.To, in.Points)
		}
		ys, err := halfiterate.Series(xs, in.Iterations)
		if err != nil {
			return nil, &domain.ConfigError{Field: "iterations", Value: in.Iterations, Reason: err.Error()}
		}
		return HalfIterateOutput{X: xs, F: nullable(ys)}, nil
	}, Metadata{
		Description: "Numerical approximation for f(f(x)) = x^2 + 1.",
		Inputs:      []string{"x_values", "iterations"},
	})

	_ = r.Register(Factorial, func(ctx context.Context, args map[string]any) (any, error) {
		var in FactorialInput
		if err := Decode(args, &in); err != nil {
			return nil, &domain.ConfigError{Field: "arguments", Value: args, Reason: err.Error()}
		}
		if in.X > MaxFactorialInput {
			return nil, &domain.ConfigError{Field: "x", Value: in.X, Reason: "too large"}
		}
		var (
			v   *big.Int
			err error
		)
		if ledger != nil {
			v, err = ledger.Record(in.X)
		} else {
			v, err = factorial.Compute(in.X)
		}
		if err != nil {
			return nil, err
		}
		if cfg.onFactorial != nil {
			cfg.onFactorial(in.X)
		}
		return FactorialOutput{X: in.X, Value: v.String(), Digits: factorial.Digits(v)}, nil
	}, Metadata{
		Description: "Exact factorial x!, appended to the CSV ledger when one is configured.",
		Inputs:      []string{"x"},
	})

	return r
}

func nullable(vs []float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		if math.IsNaN(vs[i]) || math.IsInf(vs[i], 0) {
			continue
		}
		out[i] = &vs[i]
	}
	return out
}
