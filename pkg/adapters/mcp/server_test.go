package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/internal/logging"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	solver := composita.New()
	return NewServer(registry.NewDefault(solver, nil), logging.NewNop())
}

func TestHandleSolve(t *testing.T) {
	s := newTestServer()

	out, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]any{"max_degree": 3.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0.75}, out.Coefficients)

	_, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]any{"max_degree": 0.0})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	_, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]any{"max_degree": 2.9})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestHandleHalfIterate(t *testing.T) {
	s := newTestServer()

	out, err := s.handleHalfIterate(context.Background(), mcp.CallToolRequest{}, map[string]any{"from": 0.0, "to": 1.0, "points": 3.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, out.X)
	assert.Len(t, out.F, 3)

	_, err = s.handleHalfIterate(context.Background(), mcp.CallToolRequest{}, map[string]any{"points": 1e9})
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestHandleFactorial(t *testing.T) {
	s := newTestServer()

	out, err := s.handleFactorial(context.Background(), mcp.CallToolRequest{}, map[string]any{"x": 20.0})
	require.NoError(t, err)
	assert.Equal(t, "2432902008176640000", out.Value)
	assert.Equal(t, 19, out.Digits)
}

func TestReadAlgorithms(t *testing.T) {
	s := newTestServer()

	contents, err := s.readAlgorithms()
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, AlgorithmsURI, text.URI)

	var infos []registry.Info
	require.NoError(t, json.Unmarshal([]byte(text.Text), &infos))
	assert.Len(t, infos, 3)
}
