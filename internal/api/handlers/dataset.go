package handlers

import (
	"net/http"

	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/models"
	"consent-theater/pkg/logger"
)

// DatasetHandler serves the current snapshot.
type DatasetHandler struct {
	store  *datastore.Store
	logger *logger.Logger
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(store *datastore.Store, log *logger.Logger) *DatasetHandler {
	return &DatasetHandler{
		store:  store,
		logger: log.WithComponent("dataset"),
	}
}

// Get handles GET /api/v1/dataset
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}

// Apps handles GET /api/v1/dataset/apps
func (h *DatasetHandler) Apps(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	if !ds.Loaded() {
		respondError(w, http.StatusNotFound, "no scan data loaded")
		return
	}

	apps := ds.Apps()
	if apps == nil {
		apps = []models.AppRecord{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"scan_id": ds.ScanResult.ScanID,
		"apps":    apps,
	})
}
