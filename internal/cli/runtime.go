package cli

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/internal/config"
	"github.com/aretw0/composita/pkg/adapters/memory"
	"github.com/aretw0/composita/pkg/adapters/redis"
	"github.com/aretw0/composita/pkg/factorial"
	"github.com/aretw0/composita/pkg/keylock"
	"github.com/aretw0/composita/pkg/observability"
	"github.com/aretw0/composita/pkg/ports"
	"github.com/aretw0/composita/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// redisPingTimeout bounds the startup probe of the Redis cache.
const redisPingTimeout = 2 * time.Second

// Runtime bundles the collaborators shared by the commands.
type Runtime struct {
	Config     *config.Config
	Logger     *slog.Logger
	Solver     *composita.Solver
	Store      ports.ResultStore
	Metrics    *observability.Metrics
	Gatherer   *prometheus.Registry
	Algorithms *registry.Registry
	Ledger     *factorial.Ledger

	closers []func() error
}

// NewRuntime wires the solver, its result store and the algorithm registry from cfg.
// An unreachable Redis falls back to the in-memory store.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Runtime {
	rt := &Runtime{
		Config:   cfg,
		Logger:   logger,
		Gatherer: prometheus.NewRegistry(),
		Ledger:   factorial.NewLedger(cfg.Factorial.Ledger),
	}
	rt.Metrics = observability.NewMetrics(rt.Gatherer)
	var lockOpts []keylock.Option
	rt.Store, lockOpts = rt.createStore(ctx)

	rt.Solver = composita.New(
		composita.WithStore(rt.Store),
		composita.WithKeyLock(keylock.NewManager(append(lockOpts, keylock.WithLogger(logger))...)),
		composita.WithHooks(rt.Metrics.Hooks(logger)),
		composita.WithLogger(logger),
		composita.WithMaxDegreeLimit(cfg.Solver.MaxDegreeLimit),
	)
	rt.Algorithms = registry.NewDefault(rt.Solver, rt.Ledger, registry.OnFactorial(rt.Metrics.CountFactorial))
	return rt
}

// createStore picks the result store. Redis also coordinates solves across replicas.
func (rt *Runtime) createStore(ctx context.Context) (ports.ResultStore, []keylock.Option) {
	rc := rt.Config.Redis
	if rc.Addr == "" {
		return memory.NewStore(), nil
	}
	store := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithTTL(rc.TTL), redis.WithPrefix(rc.Prefix))

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		rt.Logger.Warn("redis unavailable, using in-memory cache", "addr", rc.Addr, "error", err)
		_ = store.Close()
		return memory.NewStore(), nil
	}
	rt.Logger.Debug("redis cache enabled", "addr", rc.Addr, "ttl", rc.TTL)
	rt.closers = append(rt.closers, store.Close)
	return store, []keylock.Option{keylock.WithLocker(store.Locker())}
}

// Close releases external connections.
func (rt *Runtime) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c())
	}
	rt.closers = nil
	return errors.Join(errs...)
}
