package main

import (
	"github.com/aretw0/composita"
	"github.com/aretw0/composita/internal/cli"
	"github.com/aretw0/composita/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the solver in server mode, exposing a JSON API over HTTP with
Prometheus metrics on /metrics. Results are cached in Redis when redis.addr is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			app.cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}
		if cmd.Flags().Changed("redis") {
			app.cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
		}

		tui.PrintBanner(cmd.ErrOrStderr(), composita.Version)
		rt := newRuntime(cmd)
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()
		return cli.Serve(ctx, rt, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the result cache (e.g. localhost:6379)")
}
