package composita

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/composita/internal/runtime"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/keylock"
	"github.com/aretw0/composita/pkg/ports"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// DefaultMaxDegreeLimit caps MaxDegree unless overridden with WithMaxDegreeLimit.
// The table needs O(N²) memory and O(N³) time, so this is the degree budget.
const DefaultMaxDegreeLimit = 5000

// Solver is the high-level entry point of the composita library.
// It validates parameters, consults an optional result cache and runs the engine.
type Solver struct {
	store          ports.ResultStore
	locks          *keylock.Manager
	hooks          domain.SolveHooks
	logger         *slog.Logger
	maxDegreeLimit int
	now            func() time.Time
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithStore caches solutions in the given store.
func WithStore(store ports.ResultStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithKeyLock makes concurrent solves of the same parameters compute once:
// later callers wait for the first and are served from the store.
func WithKeyLock(locks *keylock.Manager) Option {
	return func(s *Solver) {
		s.locks = locks
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.SolveHooks) Option {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithMaxDegreeLimit overrides DefaultMaxDegreeLimit. A limit <= 0 disables the budget.
func WithMaxDegreeLimit(limit int) Option {
	return func(s *Solver) {
		s.maxDegreeLimit = limit
	}
}

// New initializes a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		maxDegreeLimit: DefaultMaxDegreeLimit,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// MaxDegreeLimit returns the degree budget in effect.
func (s *Solver) MaxDegreeLimit() int {
	return s.maxDegreeLimit
}

// Solve returns the coefficients of A(x) for p.
// cached reports whether the solution came from the store.
func (s *Solver) Solve(ctx context.Context, p domain.Params) (sol *domain.Solution, cached bool, err error) {
	p.Seed = p.SeedKindOrDefault()
	if err := p.Validate(s.maxDegreeLimit); err != nil {
		s.logger.Warn("rejected parameters", "params", p, "error", err)
		return nil, false, err
	}
	key := p.Fingerprint()

	if hit := s.lookup(ctx, key, p); hit != nil {
		return hit, true, nil
	}
	if s.store == nil || s.locks == nil {
		sol, err = s.solve(ctx, key, p)
		return sol, false, err
	}

	err = s.locks.WithLock(ctx, key, func(ctx context.Context) error {
		// Another caller may have stored it while we waited.
		if hit := s.lookup(ctx, key, p); hit != nil {
			sol, cached = hit, true
			return nil
		}
		sol, err = s.solve(ctx, key, p)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return sol, cached, nil
}

// lookup returns the stored solution for key, or nil.
func (s *Solver) lookup(ctx context.Context, key string, p domain.Params) *domain.Solution {
	if s.store == nil {
		return nil
	}
	hit, err := s.store.Load(ctx, key)
	switch {
	case err == nil:
		s.fire(ctx, s.hooks.OnCacheHit, &domain.SolveEvent{Type: domain.EventCacheHit, Key: key, Params: p, MemoEntries: hit.MemoEntries})
		s.logger.Debug("solution served from cache", "key", key)
		return hit
	case !errors.Is(err, domain.ErrSolutionNotFound):
		s.logger.Warn("result store lookup failed", "key", key, "error", err)
	}
	return nil
}

// solve runs the engine with hooks and stores the result.
func (s *Solver) solve(ctx context.Context, key string, p domain.Params) (*domain.Solution, error) {
	s.fire(ctx, s.hooks.OnSolveStart, &domain.SolveEvent{Type: domain.EventSolveStart, Key: key, Params: p})
	start := s.now()

	sol, err := s.compute(ctx, p)

	done := &domain.SolveEvent{Type: domain.EventSolveComplete, Key: key, Params: p, Elapsed: s.now().Sub(start), Err: err}
	if sol != nil {
		done.MemoEntries = sol.MemoEntries
	}
	s.fire(ctx, s.hooks.OnSolveComplete, done)

	if err != nil {
		s.logger.Error("solve failed", "key", key, "kind", domain.ErrorKind(err), "error", err)
		return nil, err
	}
	sol.Elapsed = done.Elapsed
	s.logger.Info("solve complete", "key", key, "memo_entries", sol.MemoEntries, "elapsed", sol.Elapsed)

	if s.store != nil {
		if err := s.store.Save(ctx, key, sol); err != nil {
			s.logger.Warn("result store save failed", "key", key, "error", err)
		}
	}
	return sol, nil
}

func (s *Solver) compute(ctx context.Context, p domain.Params) (*domain.Solution, error) {
	table, err := runtime.NewTable(p)
	if err != nil {
		return nil, err
	}
	if err := table.Fill(ctx); err != nil {
		return nil, err
	}
	return &domain.Solution{
		Params:       p,
		Coefficients: table.Column(1),
		MemoEntries:  table.Len(),
		ComputedAt:   s.now().UTC(),
	}, nil
}

func (s *Solver) fire(ctx context.Context, hook func(context.Context, *domain.SolveEvent), e *domain.SolveEvent) {
	if hook == nil {
		return
	}
	e.Timestamp = s.now()
	hook(ctx, e)
}

// Curve holds F(x) and A(x) sampled on a shared grid.
type Curve struct {
	X []float64 `json:"x"`
	F []float64 `json:"f"`
	A []float64 `json:"a"`
}

// Evaluate samples F(x) = a·x + b·x² and the polynomial A(x) of sol over [lo, hi].
func Evaluate(sol *domain.Solution, lo, hi float64, points int) Curve {
	xs := runtime.Linspace(lo, hi, points)
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = runtime.EvaluateSeed(sol.Params.A, sol.Params.B, x)
	}
	return Curve{X: xs, F: fs, A: runtime.Sample(sol.Coefficients, xs)}
}
