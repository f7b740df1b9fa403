package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/composita/pkg/chart"
	"github.com/aretw0/composita/pkg/domain"
)

// SolveOptions configures a single solver run from the command line.
type SolveOptions struct {
	Params   domain.Params
	Format   string
	PlotPath string
	Timeout  time.Duration
	Styled   bool
}

// Solve computes the coefficients, prints them and optionally saves the plot.
func Solve(ctx context.Context, rt *Runtime, opts SolveOptions, w io.Writer) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	sol, cached, err := rt.Solver.Solve(ctx, opts.Params)
	if err != nil {
		return err
	}
	if err := WriteSolution(w, sol, cached, opts.Format, opts.Styled); err != nil {
		return err
	}

	if opts.PlotPath == "" {
		return nil
	}
	if err := chart.Save(opts.PlotPath, sol, chart.DefaultOptions()); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	rt.Logger.Info("plot saved", "path", opts.PlotPath)
	return nil
}
