// Command dashboard serves the forest monitoring dashboard: it loads the
// sensor CSV, normalizes it into an immutable snapshot, and exposes the
// single-page view plus its JSON API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nancy240/Forest-monitoring-data/internal/adapter/httpapi"
	"github.com/Nancy240/Forest-monitoring-data/internal/config"
	"github.com/Nancy240/Forest-monitoring-data/internal/csvsource"
	"github.com/Nancy240/Forest-monitoring-data/internal/dataset"
	"github.com/Nancy240/Forest-monitoring-data/internal/observability"
	"github.com/Nancy240/Forest-monitoring-data/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	source := csvsource.New(cfg.CSVSource, cfg.FetchTimeout, logger)
	store := dataset.NewStore()
	loader := pipeline.New(source, pipeline.NewNormalizer(), store, logger, metrics, cfg.ReloadInterval)

	srv := httpapi.NewServer(cfg.HTTPAddr, store, loader, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the dataset loader.
	go func() {
		if err := loader.Run(ctx); err != nil {
			logger.Error("loader error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
