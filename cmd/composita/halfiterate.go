package main

import (
	"github.com/aretw0/composita/internal/cli"
	"github.com/spf13/cobra"
)

var halfIterateCmd = &cobra.Command{
	Use:   "half-iterate",
	Short: "Tabulate the numerical half-iterate of x² + 1",
	Long: `Prints x and g(x) where g(g(x)) ≈ x² + 1, refined recursively from the
|x|^√2 approximation. With --orbit it prints x0, F(x0), F(F(x0)), ... instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts cli.HalfIterateOptions
		flags := cmd.Flags()
		opts.From, _ = flags.GetFloat64("from")
		opts.To, _ = flags.GetFloat64("to")
		opts.Points, _ = flags.GetInt("points")
		opts.Iterations, _ = flags.GetInt("iterations")
		opts.Orbit, _ = flags.GetInt("orbit")
		opts.X0, _ = flags.GetFloat64("x0")
		opts.JSON, _ = flags.GetBool("json")
		return cli.HalfIterate(opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(halfIterateCmd)

	halfIterateCmd.Flags().Float64("from", -5, "Grid start")
	halfIterateCmd.Flags().Float64("to", 5, "Grid end")
	halfIterateCmd.Flags().Int("points", 101, "Grid size")
	halfIterateCmd.Flags().IntP("iterations", "i", 5, "Refinement depth")
	halfIterateCmd.Flags().Int("orbit", 0, "Print this many steps of the orbit of --x0 under F")
	halfIterateCmd.Flags().Float64("x0", 0, "Orbit start")
	halfIterateCmd.Flags().Bool("json", false, "Print [x, g(x)] pairs as JSON")
}
