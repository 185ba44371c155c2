package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"consent-theater/internal/domain/services"
	"consent-theater/pkg/logger"
)

// IngestHandler exposes the two ingestion modes over HTTP. File mode keeps
// its best-effort contract: anything that does not replace the snapshot is a
// 204 no-op. URL mode surfaces its errors so the caller can distinguish an
// unreachable scanner from an unrecognized payload.
type IngestHandler struct {
	ingestor  *services.Ingestor
	maxUpload int64
	logger    *logger.Logger
}

// NewIngestHandler creates a new IngestHandler
func NewIngestHandler(ingestor *services.Ingestor, maxUpload int64, log *logger.Logger) *IngestHandler {
	return &IngestHandler{
		ingestor:  ingestor,
		maxUpload: maxUpload,
		logger:    log.WithComponent("ingest"),
	}
}

// File handles POST /api/v1/ingest/file
func (h *IngestHandler) File(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUpload))
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}

	ds, err := h.ingestor.IngestFile(r.Context(), body)
	if err != nil || ds == nil {
		// Best-effort: malformed or unrecognized uploads leave the prior
		// snapshot in place.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, metaFor(ds))
}

type ingestURLRequest struct {
	URL string `json:"url"`
}

// URL handles POST /api/v1/ingest/url
func (h *IngestHandler) URL(w http.ResponseWriter, r *http.Request) {
	var req ingestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		respondError(w, http.StatusBadRequest, "request body must be {\"url\": \"...\"}")
		return
	}

	ds, err := h.ingestor.IngestURL(r.Context(), req.URL)
	if err != nil {
		h.logger.Warn().Str("url", req.URL).Err(err).Msg("url ingestion failed")
		respondError(w, statusForIngestError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, metaFor(ds))
}

func statusForIngestError(err error) int {
	var fetchErr *services.FetchError
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}

	var formatErr *services.FormatError
	var noScan *services.NoScanDataError
	if errors.As(err, &formatErr) || errors.As(err, &noScan) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
