package main

import (
	"os"

	"github.com/aretw0/composita/internal/cli"
	"github.com/aretw0/composita/internal/presentation/tui"
	"github.com/aretw0/composita/pkg/domain"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the coefficients of A(x)",
	Long: `Computes A[1..N] such that A(A(x)) = a·x + b·x², printing them in the chosen
format. With --plot the curves F(x) and A(x) on [-1, 1] are saved as an image.`,
	Example: `  composita solve --max-degree 10
  composita solve --f1 4 --a 4 --b 1 --format json
  composita solve --max-degree 30 --plot composita.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := app.cfg.Solver.Params
		flags := cmd.Flags()
		if flags.Changed("a") {
			p.A, _ = flags.GetFloat64("a")
		}
		if flags.Changed("b") {
			p.B, _ = flags.GetFloat64("b")
		}
		if flags.Changed("f1") {
			p.F1, _ = flags.GetFloat64("f1")
		}
		if flags.Changed("max-degree") {
			p.MaxDegree, _ = flags.GetInt("max-degree")
		}
		if flags.Changed("seed") {
			seed, _ := flags.GetString("seed")
			p.Seed = domain.SeedKind(seed)
		}

		opts := cli.SolveOptions{Params: p, Timeout: app.cfg.Solver.Timeout}
		opts.Format, _ = flags.GetString("format")
		opts.PlotPath, _ = flags.GetString("plot")
		if flags.Changed("timeout") {
			opts.Timeout, _ = flags.GetDuration("timeout")
		}
		opts.Styled = opts.Format == cli.FormatMarkdown && tui.IsTerminal(os.Stdout)

		rt := newRuntime(cmd)
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.HandleExecutionError(cli.Solve(ctx, rt, opts, cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Float64("a", domain.DefaultA, "Linear coefficient of F(x)")
	solveCmd.Flags().Float64("b", domain.DefaultB, "Quadratic coefficient of F(x)")
	solveCmd.Flags().Float64("f1", domain.DefaultF1, "Diagonal base: A(n,n) = f1^(n/2)")
	solveCmd.Flags().IntP("max-degree", "n", domain.DefaultMaxDegree, "Number of coefficients to compute")
	solveCmd.Flags().String("seed", string(domain.SeedBinomial), "Seed term: binomial or composita")
	solveCmd.Flags().StringP("format", "o", cli.FormatText, "Output format: text, json or markdown")
	solveCmd.Flags().String("plot", "", "Save a plot of F(x) and A(x) to this file")
	solveCmd.Flags().Duration("timeout", 0, "Abort the computation after this long (0 disables)")
}
