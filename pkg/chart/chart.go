// Package chart renders A(x) against its seed F(x) = a·x + b·x².
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/aretw0/composita"
	"github.com/aretw0/composita/pkg/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Options controls the sample grid and the canvas.
type Options struct {
	Lo     float64
	Hi     float64
	Points int
	Width  vg.Length
	Height vg.Length
	Format string // png, svg, pdf, ...
}

// DefaultOptions samples [-1, 1] at 1000 points on a 10x6 inch PNG.
func DefaultOptions() Options {
	return Options{
		Lo:     -1,
		Hi:     1,
		Points: 1000,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		Format: "png",
	}
}

var (
	seedColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	solutionColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// New builds the plot of F(x) and A(x) for sol.
func New(sol *domain.Solution, opts Options) (*plot.Plot, error) {
	if opts.Points < 2 {
		return nil, fmt.Errorf("chart needs at least 2 points, got %d", opts.Points)
	}
	curve := composita.Evaluate(sol, opts.Lo, opts.Hi, opts.Points)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("plot of F(x) and A(x), with n =%d degrees of A(x) recurred. partition =%d",
		len(sol.Coefficients), opts.Points)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	seed, err := plotter.NewLine(finitePoints(curve.X, curve.F))
	if err != nil {
		return nil, fmt.Errorf("seed line: %w", err)
	}
	seed.LineStyle.Color = seedColor
	seed.LineStyle.Width = vg.Points(1.5)

	solution, err := plotter.NewLine(finitePoints(curve.X, curve.A))
	if err != nil {
		return nil, fmt.Errorf("solution line: %w", err)
	}
	solution.LineStyle.Color = solutionColor
	solution.LineStyle.Width = vg.Points(1.5)

	p.Add(seed, solution)
	p.Legend.Add(fmt.Sprintf("F(x) = %g*x + %g*x^2", sol.Params.A, sol.Params.B), seed)
	p.Legend.Add("A(x)", solution)
	p.Legend.Top = true
	return p, nil
}

// Render writes the chart to w in opts.Format.
func Render(w io.Writer, sol *domain.Solution, opts Options) error {
	p, err := New(sol, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("chart writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart write: %w", err)
	}
	return nil
}

// RenderBase64 returns the chart encoded as standard base64, ready for a data: URI.
func RenderBase64(sol *domain.Solution, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, sol, opts); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Save writes the chart to path, taking the format from its extension.
func Save(path string, sol *domain.Solution, opts Options) error {
	p, err := New(sol, opts)
	if err != nil {
		return err
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		path += "." + opts.Format
	}
	return p.Save(opts.Width, opts.Height, path)
}

// finitePoints drops samples the plotter cannot draw (overflowed polynomial values).
func finitePoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}
