// main.go - Standalone scanner transfer-server simulator
//
// Serves the wire formats a phone-side scanner exposes over local Wi-Fi, so
// the dashboard's URL ingestion (single endpoint and auto-discovery) can be
// exercised without a device on the network. Run it next to cmd/api and point
// POST /api/v1/ingest/url at its base URL.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// ============================================================================
// WIRE MODELS
// ============================================================================

type wireApp struct {
	PackageName          string   `json:"package_name"`
	AppName              string   `json:"app_name"`
	Permissions          []string `json:"permissions"`
	DangerousPermissions []string `json:"dangerous_permissions"`
	RiskScore            int      `json:"risk_score"`
}

type wireScan struct {
	ScanID         string    `json:"scan_id"`
	DeviceModel    string    `json:"device_model"`
	AndroidVersion string    `json:"android_version"`
	ScanTimestamp  string    `json:"scan_timestamp"`
	Apps           []wireApp `json:"apps"`
}

type rawApp struct {
	PackageName string   `json:"packageName"`
	AppName     string   `json:"appName"`
	VersionName string   `json:"versionName"`
	Permissions []string `json:"permissions"`
}

type connection struct {
	Timestamp          string `json:"timestamp"`
	SourceApp          string `json:"source_app"`
	SourceAppName      string `json:"source_app_name"`
	DestinationHost    string `json:"destination_host"`
	DestinationCompany string `json:"destination_company"`
	DestinationCountry string `json:"destination_country"`
	BytesTransferred   int64  `json:"bytes_transferred"`
	IsTracker          bool   `json:"is_tracker"`
	HourOfDay          int    `json:"hour_of_day"`
	UserWasActive      bool   `json:"user_was_active"`
}

type contact struct {
	Name                  string   `json:"name"`
	IsGhost               bool     `json:"is_ghost"`
	DigitalFootprintScore int      `json:"digital_footprint_score"`
	ExposedTo             []string `json:"exposed_to"`
	ExposedByApps         []string `json:"exposed_by_apps"`
}

type combinedExport struct {
	Format     string       `json:"format"`
	ScanResult wireScan     `json:"scan_result"`
	VpnLog     []connection `json:"vpn_log"`
	Contacts   []contact    `json:"contacts"`
}

// ============================================================================
// SAMPLE STATE
// ============================================================================

type scannerState struct {
	mu          sync.RWMutex
	scan        wireScan
	rawApps     []rawApp
	connections []connection
	contacts    []contact
}

var state *scannerState

func init() {
	now := time.Now().UTC().Format(time.RFC3339)

	state = &scannerState{
		scan: wireScan{
			ScanID:         "sim-scan-0001",
			DeviceModel:    "Pixel 7a (simulated)",
			AndroidVersion: "14",
			ScanTimestamp:  now,
			Apps: []wireApp{
				{
					PackageName: "com.instagram.android",
					AppName:     "Instagram",
					Permissions: []string{"CAMERA", "RECORD_AUDIO", "ACCESS_FINE_LOCATION", "READ_CONTACTS", "INTERNET"},
				},
				{
					PackageName: "com.whatsapp",
					AppName:     "WhatsApp",
					Permissions: []string{"READ_CONTACTS", "CAMERA", "RECORD_AUDIO", "READ_SMS", "INTERNET"},
				},
				{
					PackageName: "com.phonepe.app",
					AppName:     "PhonePe",
					Permissions: []string{"READ_SMS", "ACCESS_FINE_LOCATION", "READ_CONTACTS", "CAMERA", "INTERNET"},
				},
				{
					PackageName: "com.calculator.basic",
					AppName:     "Calculator",
					Permissions: []string{"INTERNET"},
				},
			},
		},
		rawApps: []rawApp{
			{
				PackageName: "com.instagram.android",
				AppName:     "Instagram",
				VersionName: "312.0",
				Permissions: []string{
					"android.permission.CAMERA",
					"android.permission.RECORD_AUDIO",
					"android.permission.ACCESS_FINE_LOCATION",
					"android.permission.READ_CONTACTS",
					"com.google.android.gms.permission.AD_ID",
				},
			},
			{
				PackageName: "com.zomato.app",
				AppName:     "Zomato",
				VersionName: "17.9",
				Permissions: []string{
					"android.permission.ACCESS_FINE_LOCATION",
					"android.permission.READ_CONTACTS",
					"com.google.android.gms.permission.AD_ID",
				},
			},
		},
		connections: []connection{
			{Timestamp: now, SourceApp: "com.instagram.android", SourceAppName: "Instagram", DestinationHost: "graph.facebook.com", DestinationCompany: "Meta Platforms", DestinationCountry: "US", BytesTransferred: 48213, IsTracker: true, HourOfDay: 2, UserWasActive: false},
			{Timestamp: now, SourceApp: "com.whatsapp", SourceAppName: "WhatsApp", DestinationHost: "mmg.whatsapp.net", DestinationCompany: "Meta Platforms", DestinationCountry: "US", BytesTransferred: 120044, IsTracker: false, HourOfDay: 9, UserWasActive: true},
			{Timestamp: now, SourceApp: "com.phonepe.app", SourceAppName: "PhonePe", DestinationHost: "api.phonepe.com", DestinationCompany: "PhonePe", DestinationCountry: "IN", BytesTransferred: 20987, IsTracker: false, HourOfDay: 13, UserWasActive: true},
			{Timestamp: now, SourceApp: "com.instagram.android", SourceAppName: "Instagram", DestinationHost: "graph.instagram.com", DestinationCompany: "Meta Platforms", DestinationCountry: "US", BytesTransferred: 90031, IsTracker: true, HourOfDay: 3, UserWasActive: false},
		},
		contacts: []contact{
			{Name: "Asha Pillai", IsGhost: false, DigitalFootprintScore: 82, ExposedTo: []string{"Meta Platforms", "Alphabet Inc."}, ExposedByApps: []string{"WhatsApp", "Instagram"}},
			{Name: "Dinesh Rao", IsGhost: true, DigitalFootprintScore: 31, ExposedTo: []string{"Meta Platforms"}, ExposedByApps: []string{"WhatsApp"}},
			{Name: "Kavya Menon", IsGhost: false, DigitalFootprintScore: 64, ExposedTo: []string{"Meta Platforms", "ByteDance"}, ExposedByApps: []string{"Instagram"}},
		},
	}
}

// ============================================================================
// HANDLERS
// ============================================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Scanner] Failed to encode response: %v", err)
	}
}

func handleScan(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	writeJSON(w, http.StatusOK, state.scan)
}

func handleRawScan(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	writeJSON(w, http.StatusOK, state.rawApps)
}

func handlePcapJSON(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string][]connection{"connections": state.connections})
}

func handleContacts(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	writeJSON(w, http.StatusOK, state.contacts)
}

func handleExport(w http.ResponseWriter, r *http.Request) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	writeJSON(w, http.StatusOK, combinedExport{
		Format:     "consent-theater-combined",
		ScanResult: state.scan,
		VpnLog:     state.connections,
		Contacts:   state.contacts,
	})
}

// handleRecordConnection appends a connection to the simulated capture, so
// repeated discovery runs see the log grow like a live capture would.
func handleRecordConnection(w http.ResponseWriter, r *http.Request) {
	var conn connection
	if err := json.NewDecoder(r.Body).Decode(&conn); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid connection record"})
		return
	}
	if conn.Timestamp == "" {
		conn.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	state.mu.Lock()
	state.connections = append(state.connections, conn)
	total := len(state.connections)
	state.mu.Unlock()

	log.Printf("[Scanner] Recorded connection to %s (%d total)", conn.DestinationHost, total)
	writeJSON(w, http.StatusCreated, map[string]int{"total_connections": total})
}

// ============================================================================
// MAIN
// ============================================================================

func main() {
	port := os.Getenv("SCANNER_PORT")
	if port == "" {
		port = "8080"
	}

	r := mux.NewRouter()
	r.HandleFunc("/", handleExport).Methods("GET")
	r.HandleFunc("/scan", handleScan).Methods("GET")
	r.HandleFunc("/scan/raw", handleRawScan).Methods("GET")
	r.HandleFunc("/pcap/json", handlePcapJSON).Methods("GET")
	r.HandleFunc("/contacts", handleContacts).Methods("GET")
	r.HandleFunc("/export", handleExport).Methods("GET")
	r.HandleFunc("/pcap/record", handleRecordConnection).Methods("POST")

	addr := ":" + port
	log.Printf("[Scanner] Transfer-server simulator listening on %s", addr)
	log.Printf("[Scanner] Endpoints: /scan /scan/raw /pcap/json /contacts /export")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("[Scanner] Server failed: %v", err)
	}
}
