package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"consent-theater/internal/domain/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// datasetMeta is the ingestion success response: enough for a client to know
// what it just loaded without echoing the whole snapshot back.
type datasetMeta struct {
	Generation    uint64 `json:"generation"`
	ScanID        string `json:"scan_id"`
	TotalApps     int    `json:"total_apps"`
	TotalTrackers int    `json:"total_trackers"`
	VpnEntries    int    `json:"vpn_entries"`
	Contacts      int    `json:"contacts"`
	LoadedAt      string `json:"loaded_at"`
}

func metaFor(ds *models.Dataset) datasetMeta {
	meta := datasetMeta{
		Generation: ds.Generation,
		VpnEntries: len(ds.VpnLog),
		Contacts:   len(ds.Contacts),
		LoadedAt:   ds.LoadedAt.Format(time.RFC3339),
	}
	if ds.ScanResult != nil {
		meta.ScanID = ds.ScanResult.ScanID
		meta.TotalApps = ds.ScanResult.TotalApps
		meta.TotalTrackers = ds.ScanResult.TotalTrackers
	}
	return meta
}
