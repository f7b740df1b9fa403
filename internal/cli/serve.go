package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	httpAdapter "github.com/aretw0/composita/pkg/adapters/http"
)

// Serve runs the HTTP API until ctx is cancelled, then drains in-flight requests
// for up to the configured shutdown timeout.
func Serve(ctx context.Context, rt *Runtime, w io.Writer) error {
	handler, err := httpAdapter.NewHandler(rt.Solver, rt.Algorithms,
		httpAdapter.WithMetrics(rt.Gatherer),
		httpAdapter.WithLogger(rt.Logger),
		httpAdapter.WithSolveTimeout(rt.Config.Solver.Timeout),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + rt.Config.Server.Port,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(w, "Starting Composita Server on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		timeout := rt.Config.Server.ShutdownTimeout
		printSystemMessage(w, "Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Warn("graceful shutdown did not complete", "timeout", timeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("killing server: %w", err)
			}
		}
		printSystemMessage(w, "Composita Server stopped gracefully")
		return nil
	}
}
