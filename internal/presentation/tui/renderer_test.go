package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/composita/internal/presentation/tui"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionMarkdown(t *testing.T) {
	sol := &domain.Solution{
		Params:       domain.Params{A: 1, B: 1, F1: 1, MaxDegree: 3},
		Coefficients: []float64{1, 1, 0.75},
		MemoEntries:  6,
	}
	md := tui.SolutionMarkdown(sol, false)
	assert.Contains(t, md, "# A(x) for F(x) = 1x + 1x²")
	assert.Contains(t, md, "6 memo entries")
	assert.Contains(t, md, "| 3 | 0.75 |")

	assert.Contains(t, tui.SolutionMarkdown(sol, true), "(cached)")
}

func TestNewRenderer_Plain(t *testing.T) {
	render := tui.NewRenderer(false)
	out, err := render("| a |")
	require.NoError(t, err)
	assert.Equal(t, "| a |", out)
}

func TestNewRenderer_Styled(t *testing.T) {
	render := tui.NewRenderer(true)
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}
