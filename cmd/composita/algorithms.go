package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the registered algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := newRuntime(cmd)
		for _, info := range rt.Algorithms.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s (inputs: %v)\n", info.Name, info.Description, info.Inputs)
		}
		return nil
	},
}

var algorithmsRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a registered algorithm with JSON arguments",
	Example: `  composita algorithms run factorial --args '{"x": 30}'
  composita algorithms run compositaSolver --args '{"max_degree": "5"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("args")
		input := map[string]any{}
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			return fmt.Errorf("invalid --args: %w", err)
		}

		rt := newRuntime(cmd)
		out, err := rt.Algorithms.Execute(cmd.Context(), args[0], input)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
	algorithmsCmd.AddCommand(algorithmsRunCmd)
	algorithmsRunCmd.Flags().String("args", "{}", "JSON object of algorithm arguments")
}
