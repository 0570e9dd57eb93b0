// Package bootstrap handles application initialization and lifecycle
// management for the cortexgate service.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonesrussell/cortexgate/internal/logger"
)

const (
	version         = "dev"
	shutdownTimeout = 10 * time.Second
)

// Start initializes and runs the cortexgate application until SIGINT or
// SIGTERM.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Phase 2: Setup the triage pipeline and HTTP server
	server := SetupHTTPServer(cfg, log)

	// Phase 3: Optional inbox watcher
	if cfg.Inbox.Watch {
		StartWatcher(ctx, cfg, log)
	}

	log.Info("Starting HTTP server",
		logger.String("host", cfg.Server.Host),
		logger.Int("port", cfg.Server.Port),
		logger.String("inbox", cfg.Inbox.Dir),
		logger.String("archive", cfg.Archive.Dir),
	)

	errCh := make(chan error, 1)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case runErr := <-errCh:
		if runErr != nil {
			log.Error("Server error", logger.Error(runErr))
			return fmt.Errorf("server error: %w", runErr)
		}
	case sig := <-sigCh:
		log.Info("Shutdown signal received",
			logger.String("signal", sig.String()),
		)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	log.Info("Server exited")
	return nil
}
