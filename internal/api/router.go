package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"consent-theater/internal/api/handlers"
	apimiddleware "consent-theater/internal/api/middleware"
	"consent-theater/internal/config"
	"consent-theater/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   *config.Config
	handlers *handlers.Handlers
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg *config.Config, h *handlers.Handlers, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Health check
	router.Get("/health", r.handlers.Health.Check)

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		// Current snapshot
		api.Route("/dataset", func(ds chi.Router) {
			ds.Get("/", r.handlers.Dataset.Get)
			ds.Get("/apps", r.handlers.Dataset.Apps)
		})

		// Derived metrics
		api.Route("/metrics", func(metrics chi.Router) {
			metrics.Get("/summary", r.handlers.Metrics.Summary)
			metrics.Get("/demographics", r.handlers.Metrics.Demographics)
			metrics.Get("/revenue", r.handlers.Metrics.Revenue)
			metrics.Get("/trust", r.handlers.Metrics.Trust)
			metrics.Get("/contagion", r.handlers.Metrics.Contagion)
		})

		// Reference tables
		api.Route("/taxonomy", func(tax chi.Router) {
			tax.Get("/brands", r.handlers.Taxonomy.Brands)
			tax.Get("/brokers", r.handlers.Taxonomy.Brokers)
		})

		// Ingestion
		api.Route("/ingest", func(ingest chi.Router) {
			ingest.Post("/file", r.handlers.Ingest.File)
			ingest.Post("/url", r.handlers.Ingest.URL)
		})

		// Data-erasure letters
		api.Post("/deletion-request", r.handlers.Deletion.Generate)
	})

	return router
}
