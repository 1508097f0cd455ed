package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
	httpiface "github.com/synthspec/synthspec/internal/interfaces/http"
)

// NewServeCmd creates the serve command, which runs the HTTP API server
// until SIGINT or SIGTERM.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the spectra HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cliCtx, err := cliContextFrom(cmd)
	if err != nil {
		return err
	}
	cfg := cliCtx.Config

	// The server logs in the configured format, not the CLI's console form.
	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	server, cleanup, err := httpiface.Bootstrap(cfg, logger)
	if err != nil {
		return fmt.Errorf("server bootstrap failed: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", logging.Int("port", cfg.Server.Port))
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
