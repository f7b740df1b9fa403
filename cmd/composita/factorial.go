package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/composita/internal/cli"
	"github.com/spf13/cobra"
)

var factorialCmd = &cobra.Command{
	Use:   "factorial [x...]",
	Short: "Compute exact factorials and append them to the CSV ledger",
	Long: `Computes x! exactly for each argument and appends "x,x!" to the ledger file.
Without arguments it prompts for values until a non-integer is entered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("ledger") {
			app.cfg.Factorial.Ledger, _ = cmd.Flags().GetString("ledger")
		}
		rt := newRuntime(cmd)
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			for _, arg := range args {
				x, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				if err := cli.RecordFactorial(out, rt.Ledger, x); err != nil {
					return err
				}
				rt.Metrics.CountFactorial(x)
			}
			return nil
		}

		rl, err := cli.NewFactorialReader(os.Stdin, out)
		if err != nil {
			return err
		}
		defer rl.Close()
		return cli.RunFactorialPrompt(rl, out, rt.Ledger, rt.Metrics.CountFactorial)
	},
}

func init() {
	rootCmd.AddCommand(factorialCmd)
	factorialCmd.Flags().String("ledger", "", "CSV file results are appended to (default xvalue.csv)")
}
