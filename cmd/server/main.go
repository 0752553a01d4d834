// Package main is the entry point for the tissue-culture nursery API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tcnursery/internal/app"
	"tcnursery/internal/config"
	v1 "tcnursery/internal/infrastructure/http/v1"
	"tcnursery/internal/infrastructure/http/v1/handlers"
	"tcnursery/internal/infrastructure/http/v1/middleware"
	"tcnursery/internal/infrastructure/numerator"
	"tcnursery/internal/infrastructure/storage/memory"
	"tcnursery/internal/seed"
	"tcnursery/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	log.Infow("starting tcnursery server", "env", cfg.AppEnv)

	// --- Numerator Service ---
	numeratorService := numerator.New()

	// --- Audit Journal ---
	journal, err := memory.NewJournal(cfg.AuditCompressThreshold)
	if err != nil {
		log.Fatalw("failed to create audit journal", "error", err)
	}
	defer func() { _ = journal.Close() }()

	// --- Registers ---
	set := app.NewRegisters(numeratorService, journal)
	if cfg.SeedDemo {
		summary, err := seed.Load(ctx, set, numeratorService)
		if err != nil {
			log.Fatalw("failed to load demo data", "error", err)
		}
		log.Infow("demo data loaded", "records", summary)
	}

	// --- Metadata Registry ---
	metadataRegistry := setupMetadataRegistry()
	log.Info("metadata registry initialized")

	// --- Metrics ---
	var (
		metrics  *middleware.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		promRegistry := prometheus.NewRegistry()
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(promRegistry)
		gatherer = promRegistry
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:           log,
		Registers:        set,
		Journal:          journal,
		MetadataRegistry: metadataRegistry,
		Metrics:          metrics,
		Gatherer:         gatherer,
		Env:              cfg.AppEnv,
		Checks: map[string]handlers.ReadinessCheck{
			"registers": func() error {
				if set.Media == nil || set.Inventory == nil {
					return errors.New("registers not initialized")
				}
				return nil
			},
		},
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
