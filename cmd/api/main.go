package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"consent-theater/internal/api"
	"consent-theater/internal/api/handlers"
	"consent-theater/internal/config"
	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/services"
	"consent-theater/internal/streaming"
	"consent-theater/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting consent-theater")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus for dataset replacement events
	eventBus := streaming.NewEventBus(log)
	defer eventBus.Close()

	// Initialize the snapshot store and services
	store := datastore.NewStore(eventBus, log)

	classifier := services.NewPermissionClassifier()
	detector := services.NewTrackerDetector()
	normalizer := services.NewNormalizer(classifier, detector, log)
	ingestor := services.NewIngestor(store, normalizer, cfg.Ingest, log)
	demographics := services.NewDemographicsEngine()
	revenue := services.NewRevenueEstimator()

	// Optionally bootstrap the snapshot from a local export
	if cfg.Ingest.BootstrapFile != "" {
		bootstrap(ctx, ingestor, cfg.Ingest.BootstrapFile, log)
	}

	// Initialize handlers
	deps := handlers.Dependencies{
		Config:       cfg,
		Store:        store,
		Ingestor:     ingestor,
		Demographics: demographics,
		Revenue:      revenue,
		Logger:       log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(cfg, h, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// bootstrap loads an initial snapshot from a local file. Failures are logged
// and the server starts empty, same as a rejected upload.
func bootstrap(ctx context.Context, ingestor *services.Ingestor, path string, log *logger.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("bootstrap file unreadable, starting empty")
		return
	}

	ds, err := ingestor.IngestFile(ctx, data)
	if err != nil || ds == nil {
		log.Warn().Str("path", path).Msg("bootstrap file not ingestible, starting empty")
		return
	}

	log.Info().
		Str("path", path).
		Uint64("generation", ds.Generation).
		Msg("bootstrapped dataset from file")
}
