package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/composita/internal/cli"
	"github.com/aretw0/composita/internal/config"
	"github.com/spf13/cobra"
)

// app carries the state resolved before any subcommand runs.
var app struct {
	cfg    *config.Config
	logger *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "composita",
	Short: "Composita computes the half-iterate A(x) of F(x) = ax + bx²",
	Long: `Composita finds the power series A(x) with A(A(x)) = a·x + b·x² by solving the
composita recurrence, and serves the result over the command line, HTTP and MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		logger, err := cli.CreateLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		app.cfg, app.logger = cfg, logger
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRuntime builds the shared collaborators and closes them with the command.
func newRuntime(cmd *cobra.Command) *cli.Runtime {
	rt := cli.NewRuntime(cmd.Context(), app.cfg, app.logger)
	cobra.OnFinalize(func() {
		if err := rt.Close(); err != nil {
			app.logger.Warn("close runtime", "error", err)
		}
	})
	return rt
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}
