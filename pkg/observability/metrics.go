package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/composita/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the solver.
type Metrics struct {
	Solves      *prometheus.CounterVec
	Duration    prometheus.Histogram
	CacheHits   prometheus.Counter
	MemoEntries prometheus.Gauge
	Factorials  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "composita_solves_total",
				Help: "Total number of engine runs, by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "composita_solve_duration_seconds",
				Help:    "Duration of engine runs",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "composita_cache_hits_total",
				Help: "Solutions served from the result store",
			},
		),
		MemoEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "composita_memo_entries",
				Help: "Memo table size of the last successful run",
			},
		),
		Factorials: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "composita_factorials_total",
				Help: "Factorials computed",
			},
		),
	}
	reg.MustRegister(m.Solves, m.Duration, m.CacheHits, m.MemoEntries, m.Factorials)
	return m
}

// Hooks returns solver hooks that record into m and log through logger.
func (m *Metrics) Hooks(logger *slog.Logger) domain.SolveHooks {
	if logger == nil {
		logger = slog.Default()
	}
	return domain.SolveHooks{
		OnSolveStart: func(ctx context.Context, e *domain.SolveEvent) {
			logger.Debug("solve_start", "key", e.Key, "max_degree", e.Params.MaxDegree)
		},
		OnSolveComplete: func(ctx context.Context, e *domain.SolveEvent) {
			outcome := "ok"
			if e.Err != nil {
				outcome = domain.ErrorKind(e.Err)
			} else {
				m.MemoEntries.Set(float64(e.MemoEntries))
			}
			m.Solves.WithLabelValues(outcome).Inc()
			m.Duration.Observe(e.Elapsed.Seconds())
			logger.Debug("solve_complete", "key", e.Key, "outcome", outcome, "elapsed", e.Elapsed)
		},
		OnCacheHit: func(ctx context.Context, e *domain.SolveEvent) {
			m.CacheHits.Inc()
			logger.Debug("cache_hit", "key", e.Key)
		},
	}
}

// CountFactorial increments the factorial counter. It matches registry.OnFactorial.
func (m *Metrics) CountFactorial(int) {
	m.Factorials.Inc()
}
