package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AlgorithmsURI lists the registered algorithms.
const AlgorithmsURI = "composita://algorithms"

// Server exposes the algorithm registry as an MCP Server.
type Server struct {
	algorithms *registry.Registry
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(algorithms *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		algorithms: algorithms,
		logger:     logger,
		mcpServer:  server.NewMCPServer("composita-mcp", strings.TrimSpace(composita.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve_composita
	s.mcpServer.AddTool(mcp.NewTool("solve_composita",
		mcp.WithDescription("Compute the coefficients A[1..N] of A(x) such that A(A(x)) = a·x + b·x²."),
		mcp.WithNumber("max_degree", mcp.Required(), mcp.Description("Number of coefficients N (at least 1)")),
		mcp.WithNumber("f1", mcp.Description("Diagonal base; A(n,n) = f1^(n/2). Defaults to 1")),
		mcp.WithNumber("a", mcp.Description("Linear coefficient of F(x). Defaults to 1")),
		mcp.WithNumber("b", mcp.Description("Quadratic coefficient of F(x). Defaults to 1")),
		mcp.WithString("seed", mcp.Description("Seed term: 'binomial' (default) or 'composita'")),
		mcp.WithOutputSchema[registry.SolveOutput](),
	), mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: half_iterate
	s.mcpServer.AddTool(mcp.NewTool("half_iterate",
		mcp.WithDescription("Approximate f with f(f(x)) = x² + 1 on a grid of x values."),
		mcp.WithNumber("from", mcp.Description("Grid start. Defaults to -5")),
		mcp.WithNumber("to", mcp.Description("Grid end. Defaults to 5")),
		mcp.WithNumber("points", mcp.Description("Grid size. Defaults to 101")),
		mcp.WithNumber("iterations", mcp.Description("Refinement depth. Defaults to 5")),
		mcp.WithOutputSchema[registry.HalfIterateOutput](),
	), mcp.NewStructuredToolHandler(s.handleHalfIterate))

	// TOOL: factorial
	s.mcpServer.AddTool(mcp.NewTool("factorial",
		mcp.WithDescription("Compute x! exactly as a decimal string."),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Non-negative integer")),
		mcp.WithOutputSchema[registry.FactorialOutput](),
	), mcp.NewStructuredToolHandler(s.handleFactorial))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (registry.SolveOutput, error) {
	out, err := s.execute(ctx, registry.CompositaSolver, args)
	if err != nil {
		return registry.SolveOutput{}, err
	}
	return out.(registry.SolveOutput), nil
}

func (s *Server) handleHalfIterate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (registry.HalfIterateOutput, error) {
	out, err := s.execute(ctx, registry.NumericalHalfIterate, args)
	if err != nil {
		return registry.HalfIterateOutput{}, err
	}
	return out.(registry.HalfIterateOutput), nil
}

func (s *Server) handleFactorial(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (registry.FactorialOutput, error) {
	out, err := s.execute(ctx, registry.Factorial, args)
	if err != nil {
		return registry.FactorialOutput{}, err
	}
	return out.(registry.FactorialOutput), nil
}

func (s *Server) execute(ctx context.Context, name string, args map[string]any) (any, error) {
	out, err := s.algorithms.Execute(ctx, name, args)
	if err != nil {
		s.logger.Warn("MCP tool failed", "tool", name, "error", err)
		if errors.Is(err, registry.ErrAlgorithmNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}
	return out, nil
}

func (s *Server) registerResources() {
	// EXPOSE: composita://algorithms
	s.mcpServer.AddResource(mcp.NewResource(AlgorithmsURI, "Registered Algorithms",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return s.readAlgorithms()
	})
}

func (s *Server) readAlgorithms() ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.algorithms.List())
	if err != nil {
		return nil, fmt.Errorf("failed to list algorithms: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      AlgorithmsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
