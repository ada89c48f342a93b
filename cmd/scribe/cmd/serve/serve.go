package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"meetscribe/internal/app"
	"meetscribe/internal/config"
	"meetscribe/internal/logger"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

Exposes the upload, YouTube download, transcript listing/deletion, chat and
GitHub issue endpoints under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		log := logger.MustNew(cfg.Environment != "production")
		defer log.Sync()

		ctx := context.Background()
		srv, cleanup, err := app.InitializeServer(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
