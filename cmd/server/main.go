package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/roadworthy/internal"
	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/handler"
	"github.com/DukeRupert/roadworthy/internal/metrics"
	"github.com/DukeRupert/roadworthy/internal/middleware"
	"github.com/DukeRupert/roadworthy/internal/registry"
	"github.com/DukeRupert/roadworthy/internal/service"
	"github.com/DukeRupert/roadworthy/internal/source"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Checklist versions and weight tables
	catalog := registry.Builtin()
	logger.Info("Checklist catalog loaded", "versions", catalog.Versions())

	// Batch operations need a checklist source; without one the API still
	// serves single-checklist scoring.
	var checklistSource domain.ChecklistSource
	if cfg.ChecklistDir != "" {
		checklistSource = source.NewDirSource(cfg.ChecklistDir, catalog)
		logger.Info("Checklist source configured", "dir", cfg.ChecklistDir)
	}

	// Initialize services
	scoringService := service.NewScoringService(catalog, checklistSource, logger, cfg.ScoringConcurrency)

	// Initialize handlers
	scoreHandler := handler.NewScoreHandler(scoringService, catalog, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (optionally behind basic auth)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	// Scoring API
	scoreHandler.RegisterRoutes(mux)

	// Request logging and metrics wrap everything
	logging := middleware.NewRequestLoggingMiddleware(logger)
	root := metrics.Middleware(logging.Handler(mux))

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
