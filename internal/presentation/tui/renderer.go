package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/composita/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// Plain output is returned unchanged when styled is false (pipes, files).
func NewRenderer(styled bool) func(string) (string, error) {
	if !styled {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SolutionMarkdown renders a solution as a markdown summary with a coefficient table.
func SolutionMarkdown(sol *domain.Solution, cached bool) string {
	var b strings.Builder
	p := sol.Params
	fmt.Fprintf(&b, "# A(x) for F(x) = %gx + %gx²\n\n", p.A, p.B)
	fmt.Fprintf(&b, "f1 = %g, degree %d, seed `%s`", p.F1, len(sol.Coefficients), p.SeedKindOrDefault())
	if cached {
		b.WriteString(" (cached)")
	} else {
		fmt.Fprintf(&b, ", %d memo entries in %s", sol.MemoEntries, sol.Elapsed)
	}
	b.WriteString("\n\n| n | A[n] |\n|---:|---:|\n")
	for i, c := range sol.Coefficients {
		fmt.Fprintf(&b, "| %d | %s |\n", i+1, strconv.FormatFloat(c, 'g', 17, 64))
	}
	return b.String()
}
