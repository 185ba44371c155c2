package handlers

import (
	"net/http"

	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/services"
	"consent-theater/pkg/logger"
)

// MetricsHandler serves the derived-metrics views. Every endpoint computes
// from the current snapshot on each request; the engines are pure and cheap
// at this dataset size, so there is nothing to cache or invalidate.
type MetricsHandler struct {
	store        *datastore.Store
	demographics *services.DemographicsEngine
	revenue      *services.RevenueEstimator
	logger       *logger.Logger
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(store *datastore.Store, demo *services.DemographicsEngine, rev *services.RevenueEstimator, log *logger.Logger) *MetricsHandler {
	return &MetricsHandler{
		store:        store,
		demographics: demo,
		revenue:      rev,
		logger:       log.WithComponent("metrics"),
	}
}

// Summary handles GET /api/v1/metrics/summary
func (h *MetricsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, services.SummarizeActivity(ds.VpnLog))
}

// Demographics handles GET /api/v1/metrics/demographics
func (h *MetricsHandler) Demographics(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, h.demographics.Infer(ds.Apps()))
}

// Revenue handles GET /api/v1/metrics/revenue
func (h *MetricsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, h.revenue.Estimate(ds.Apps()))
}

// Trust handles GET /api/v1/metrics/trust
func (h *MetricsHandler) Trust(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, services.ComputeTrust(ds.Apps(), ds.Contacts))
}

// Contagion handles GET /api/v1/metrics/contagion
func (h *MetricsHandler) Contagion(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, services.BuildContagionGraph(ds.Apps(), ds.Contacts))
}
