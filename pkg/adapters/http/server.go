package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/pkg/chart"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/factorial"
	"github.com/aretw0/composita/pkg/registry"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed openapi.yaml
var openapiSpec []byte

// maxBodyBytes bounds request bodies; every request is a handful of scalars.
const maxBodyBytes = 1 << 20

// RequestIDHeader carries the correlation ID of a request.
const RequestIDHeader = "X-Request-ID"

// Solver defines the interface for the composita solver.
type Solver interface {
	Solve(ctx context.Context, p domain.Params) (*domain.Solution, bool, error)
}

// Server serves the solver and the algorithm registry over HTTP.
type Server struct {
	Solver       Solver
	Algorithms   *registry.Registry
	gatherer     prometheus.Gatherer
	logger       *slog.Logger
	solveTimeout time.Duration
	chartOptions chart.Options
	apiVersion   string
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithSolveTimeout bounds each /solve computation. Zero disables the bound.
func WithSolveTimeout(d time.Duration) Option {
	return func(s *Server) { s.solveTimeout = d }
}

// WithChartOptions overrides the plot returned by /solve.
func WithChartOptions(opts chart.Options) Option {
	return func(s *Server) { s.chartOptions = opts }
}

// NewHandler creates a new HTTP handler. It fails if the embedded API document is invalid.
func NewHandler(solver Solver, algorithms *registry.Registry, opts ...Option) (http.Handler, error) {
	doc, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	s := &Server{
		Solver:       solver,
		Algorithms:   algorithms,
		logger:       slog.Default(),
		chartOptions: chart.DefaultOptions(),
		apiVersion:   doc.Info.Version,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID, enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Post("/solve", s.Solve)
	r.Post("/factorial", s.Factorial)
	r.Get("/algorithms", s.ListAlgorithms)
	r.Post("/algorithms/{name}", s.RunAlgorithm)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r, nil
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "request_id", id, "elapsed", time.Since(start))
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SolveResponse is the body of POST /solve.
type SolveResponse struct {
	Coefficients []float64 `json:"coefficients"`
	Latex        string    `json:"latex"`
	Plot         string    `json:"plot,omitempty"`
	MemoEntries  int       `json:"memo_entries"`
	ElapsedMS    float64   `json:"elapsed_ms"`
	Cached       bool      `json:"cached"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	args, ok := s.decodeArgs(w, r)
	if !ok {
		return
	}
	p := domain.DefaultParams()
	if err := registry.Decode(args, &p); err != nil {
		s.writeError(w, r, &domain.ConfigError{Field: "body", Value: "json", Reason: err.Error()})
		return
	}

	ctx := r.Context()
	if s.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.solveTimeout)
		defer cancel()
	}

	sol, cached, err := s.Solver.Solve(ctx, p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := SolveResponse{
		Coefficients: sol.Coefficients,
		Latex:        sol.Latex(4),
		MemoEntries:  sol.MemoEntries,
		ElapsedMS:    float64(sol.Elapsed.Microseconds()) / 1000,
		Cached:       cached,
	}
	if wantPlot(r) {
		resp.Plot, err = chart.RenderBase64(sol, s.chartOptions)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("render plot: %w", err))
			return
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func wantPlot(r *http.Request) bool {
	v := r.URL.Query().Get("plot")
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}

// Factorial handles the POST /factorial request.
func (s *Server) Factorial(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, registry.Factorial)
}

// ListAlgorithms handles the GET /algorithms request.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Algorithms.List())
}

// RunAlgorithm handles the POST /algorithms/{name} request.
func (s *Server) RunAlgorithm(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, chi.URLParam(r, "name"))
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, name string) {
	args, ok := s.decodeArgs(w, r)
	if !ok {
		return
	}
	out, err := s.Algorithms.Execute(r.Context(), name, args)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"version":     strings.TrimSpace(composita.Version),
		"api_version": s.apiVersion,
	})
}

// decodeArgs reads a JSON object body. An empty body is an empty object.
func (s *Server) decodeArgs(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	args := map[string]any{}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&args)
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("invalid request body", "path", r.URL.Path, "error", err)
		s.writeError(w, r, &domain.ConfigError{Field: "body", Value: "json", Reason: err.Error()})
		return nil, false
	}
	return args, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, factorial.ErrNegative):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrAlgorithmNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDomain), errors.Is(err, domain.ErrNumericOverflow), errors.Is(err, domain.ErrRecursionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func kindFor(err error) string {
	switch {
	case errors.Is(err, factorial.ErrNegative):
		return "invalid_configuration"
	case errors.Is(err, registry.ErrAlgorithmNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}
	return domain.ErrorKind(err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", w.Header().Get(RequestIDHeader), "error", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kindFor(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
