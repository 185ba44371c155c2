package handlers

import (
	"encoding/json"
	"net/http"

	"consent-theater/internal/domain/services"
	"consent-theater/pkg/logger"
)

// DeletionHandler generates data-erasure request letters.
type DeletionHandler struct {
	logger *logger.Logger
}

// NewDeletionHandler creates a new DeletionHandler
func NewDeletionHandler(log *logger.Logger) *DeletionHandler {
	return &DeletionHandler{logger: log.WithComponent("deletion")}
}

type deletionRequest struct {
	UserName   string   `json:"user_name"`
	UserEmail  string   `json:"user_email"`
	Company    string   `json:"company"`
	Regulation string   `json:"regulation"`
	DataTypes  []string `json:"data_types"`
}

// Generate handles POST /api/v1/deletion-request
func (h *DeletionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req deletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Company == "" {
		respondError(w, http.StatusBadRequest, "company is required")
		return
	}
	if req.UserName == "" {
		req.UserName = "[Your Name]"
	}
	if req.UserEmail == "" {
		req.UserEmail = "[Your Email]"
	}

	template := services.GenerateDeletionRequest(req.UserName, req.UserEmail, req.Company, req.Regulation, req.DataTypes)
	respondJSON(w, http.StatusOK, template)
}
