package handlers

import (
	"net/http"
	"time"

	"consent-theater/internal/datastore"
	"consent-theater/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store     *datastore.Store
	version   string
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store *datastore.Store, version string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:     store,
		version:   version,
		logger:    log.WithComponent("health"),
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	Timestamp     string `json:"timestamp"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	Generation    uint64 `json:"generation"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ds := h.store.Snapshot()
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		Uptime:        time.Since(h.startTime).String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		DatasetLoaded: ds.Loaded(),
		Generation:    ds.Generation,
	})
}
