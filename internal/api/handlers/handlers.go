package handlers

import (
	"consent-theater/internal/config"
	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/services"
	"consent-theater/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Dataset  *DatasetHandler
	Metrics  *MetricsHandler
	Taxonomy *TaxonomyHandler
	Ingest   *IngestHandler
	Deletion *DeletionHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Config       *config.Config
	Store        *datastore.Store
	Ingestor     *services.Ingestor
	Demographics *services.DemographicsEngine
	Revenue      *services.RevenueEstimator
	Logger       *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Store, deps.Config.App.Version, deps.Logger),
		Dataset:  NewDatasetHandler(deps.Store, deps.Logger),
		Metrics:  NewMetricsHandler(deps.Store, deps.Demographics, deps.Revenue, deps.Logger),
		Taxonomy: NewTaxonomyHandler(deps.Logger),
		Ingest:   NewIngestHandler(deps.Ingestor, deps.Config.Ingest.MaxUploadBytes, deps.Logger),
		Deletion: NewDeletionHandler(deps.Logger),
	}
}
