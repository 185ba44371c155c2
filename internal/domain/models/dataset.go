package models

import "time"

// Dataset is the single in-memory snapshot everything downstream reads.
// It is replaced wholesale on each successful ingestion; the generation
// number makes "last to finish wins" explicit when loads overlap.
type Dataset struct {
	ScanResult *ScanResult       `json:"scan_result"`
	VpnLog     []NetworkLogEntry `json:"vpn_log"`
	Contacts   []Contact         `json:"contacts"`
	Generation uint64            `json:"generation"`
	LoadedAt   time.Time         `json:"loaded_at"`
}

// Loaded reports whether the snapshot carries scan data.
func (d *Dataset) Loaded() bool {
	return d != nil && d.ScanResult != nil
}

// Apps returns the app list, or nil for an empty snapshot.
func (d *Dataset) Apps() []AppRecord {
	if d == nil || d.ScanResult == nil {
		return nil
	}
	return d.ScanResult.Apps
}
