package handlers

import (
	"net/http"

	"consent-theater/internal/taxonomy"
	"consent-theater/pkg/logger"
)

// TaxonomyHandler serves the bundled reference tables.
type TaxonomyHandler struct {
	logger *logger.Logger
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(log *logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{logger: log.WithComponent("taxonomy")}
}

// Brands handles GET /api/v1/taxonomy/brands
func (h *TaxonomyHandler) Brands(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, taxonomy.BrandColors)
}

// Brokers handles GET /api/v1/taxonomy/brokers
func (h *TaxonomyHandler) Brokers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, taxonomy.DataBrokers)
}
