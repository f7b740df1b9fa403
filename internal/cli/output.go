package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/composita/internal/presentation/tui"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/aretw0/composita/pkg/registry"
)

// Output formats understood by WriteSolution.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// WriteSolution prints sol in the given format. styled enables terminal
// markdown rendering.
func WriteSolution(w io.Writer, sol *domain.Solution, cached bool, format string, styled bool) error {
	switch format {
	case "", FormatText:
		var b strings.Builder
		for i, c := range sol.Coefficients {
			fmt.Fprintf(&b, "A[%d] = %s\n", i+1, strconv.FormatFloat(c, 'g', 17, 64))
		}
		b.WriteString(sol.Latex(4))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(registry.SolveOutput{
			Coefficients: sol.Coefficients,
			Latex:        sol.Latex(4),
			MemoEntries:  sol.MemoEntries,
			ElapsedMS:    float64(sol.Elapsed.Microseconds()) / 1000,
			Cached:       cached,
		})
	case FormatMarkdown:
		out, err := tui.NewRenderer(styled)(tui.SolutionMarkdown(sol, cached))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}
	return &domain.ConfigError{Field: "format", Value: format, Reason: "must be text, json or markdown"}
}
