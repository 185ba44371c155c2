package models

// TrackerInfo identifies a third-party tracking SDK embedded in an app.
type TrackerInfo struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// AppRecord is one installed application in canonical form. Counts are
// derived: TrackerCount always equals len(Trackers) and
// DangerousPermissionCount always equals len(DangerousPermissions).
type AppRecord struct {
	PackageName              string        `json:"package_name"`
	AppName                  string        `json:"app_name"`
	Permissions              []string      `json:"permissions"`
	DangerousPermissions     []string      `json:"dangerous_permissions"`
	Trackers                 []TrackerInfo `json:"trackers"`
	TrackerCount             int           `json:"tracker_count"`
	DangerousPermissionCount int           `json:"dangerous_permission_count"`
	RiskScore                int           `json:"risk_score"`
}

// ScanResult is the canonical model of one device scan.
type ScanResult struct {
	ScanID                    string      `json:"scan_id"`
	DeviceModel               string      `json:"device_model"`
	AndroidVersion            string      `json:"android_version"`
	ScanTimestamp             string      `json:"scan_timestamp"`
	TotalApps                 int         `json:"total_apps"`
	TotalTrackers             int         `json:"total_trackers"`
	TotalDangerousPermissions int         `json:"total_dangerous_permissions"`
	Apps                      []AppRecord `json:"apps"`
}

// RecomputeTotals rewrites the redundant aggregate counters from the app
// list. The counters are never trusted from input.
func (s *ScanResult) RecomputeTotals() {
	s.TotalApps = len(s.Apps)
	s.TotalTrackers = 0
	s.TotalDangerousPermissions = 0
	for _, app := range s.Apps {
		s.TotalTrackers += app.TrackerCount
		s.TotalDangerousPermissions += app.DangerousPermissionCount
	}
}
