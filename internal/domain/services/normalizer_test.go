package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"consent-theater/pkg/logger"
)

func newTestNormalizer() *Normalizer {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewNormalizer(NewPermissionClassifier(), NewTrackerDetector(), log)
}

func TestDetectPayloadCombinedWinsOverScan(t *testing.T) {
	n := newTestNormalizer()

	// Carries both the combined discriminator and the scan markers; the
	// format tag must win.
	doc := `{
		"format": "consent-theater-combined",
		"scan_id": "x",
		"apps": [],
		"scan_result": {"scan_id": "s1", "apps": []},
		"vpn_log": [],
		"contacts": []
	}`

	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}
	if payload.Kind != PayloadCombined {
		t.Errorf("Kind = %v, want PayloadCombined", payload.Kind)
	}
}

func TestDetectPayloadScan(t *testing.T) {
	n := newTestNormalizer()

	doc := `{"scan_id": "scan-7", "device_model": "Pixel", "apps": []}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}
	if payload.Kind != PayloadScan {
		t.Fatalf("Kind = %v, want PayloadScan", payload.Kind)
	}
	if payload.Scan.ScanID != "scan-7" {
		t.Errorf("ScanID = %q, want scan-7", payload.Scan.ScanID)
	}
}

func TestDetectPayloadRawApps(t *testing.T) {
	n := newTestNormalizer()

	doc := `[{"packageName": "com.app", "appName": "App", "permissions": []}]`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}
	if payload.Kind != PayloadRawApps {
		t.Fatalf("Kind = %v, want PayloadRawApps", payload.Kind)
	}
	if len(payload.RawApps) != 1 || payload.RawApps[0].PackageName != "com.app" {
		t.Errorf("unexpected raw apps: %+v", payload.RawApps)
	}
}

func TestDetectPayloadUnrecognized(t *testing.T) {
	n := newTestNormalizer()

	docs := []string{
		`{"hello": 1}`,
		`{"scan_id": "x"}`, // scan marker incomplete without apps
		`[{"destination_host": "a.example"}]`,
		`[]`,
		`42`,
	}

	for _, doc := range docs {
		_, err := n.DetectPayload([]byte(doc))
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("DetectPayload(%s) error = %v, want FormatError", doc, err)
		}
	}
}

func TestDetectPayloadMalformed(t *testing.T) {
	n := newTestNormalizer()

	_, err := n.DetectPayload([]byte(`{"scan_id": `))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error = %v, want ParseError", err)
	}
}

func TestNormalizeScanGroupedPermissions(t *testing.T) {
	n := newTestNormalizer()

	doc := `{
		"scan_id": "s1",
		"apps": [{
			"package_name": "com.app",
			"app_name": "App",
			"permissions": {
				"dangerous": ["android.permission.CAMERA"],
				"normal": ["android.permission.INTERNET"]
			}
		}]
	}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}

	result := n.NormalizeScan(payload.Scan)
	app := result.Apps[0]

	wantPerms := []string{"CAMERA", "INTERNET"}
	if !reflect.DeepEqual(app.Permissions, wantPerms) {
		t.Errorf("Permissions = %v, want %v", app.Permissions, wantPerms)
	}
	// dangerous_permissions absent from the wire: derived from the taxonomy.
	if !reflect.DeepEqual(app.DangerousPermissions, []string{"CAMERA"}) {
		t.Errorf("DangerousPermissions = %v, want [CAMERA]", app.DangerousPermissions)
	}
	if app.DangerousPermissionCount != 1 {
		t.Errorf("DangerousPermissionCount = %d, want 1", app.DangerousPermissionCount)
	}
}

func TestNormalizeScanTrustsSuppliedDangerous(t *testing.T) {
	n := newTestNormalizer()

	// The wire names CAMERA in permissions but supplies an explicit empty
	// dangerous list: supplied wins over derivation.
	doc := `{
		"scan_id": "s1",
		"apps": [{
			"package_name": "com.app",
			"app_name": "App",
			"permissions": ["android.permission.CAMERA"],
			"dangerous_permissions": [],
			"risk_score": 55
		}]
	}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}

	app := n.NormalizeScan(payload.Scan).Apps[0]
	if len(app.DangerousPermissions) != 0 {
		t.Errorf("supplied empty dangerous list was overridden: %v", app.DangerousPermissions)
	}
	if app.RiskScore != 55 {
		t.Errorf("RiskScore = %d, want supplied 55", app.RiskScore)
	}
}

func TestNormalizeScanRecomputesTotals(t *testing.T) {
	n := newTestNormalizer()

	doc := `{
		"scan_id": "s1",
		"apps": [
			{"package_name": "a", "app_name": "A", "permissions": ["android.permission.CAMERA", "android.permission.READ_SMS"]},
			{"package_name": "b", "app_name": "B", "permissions": ["android.permission.INTERNET"]}
		]
	}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}

	result := n.NormalizeScan(payload.Scan)
	if result.TotalApps != 2 {
		t.Errorf("TotalApps = %d, want 2", result.TotalApps)
	}
	if result.TotalDangerousPermissions != 2 {
		t.Errorf("TotalDangerousPermissions = %d, want 2", result.TotalDangerousPermissions)
	}
	if result.TotalTrackers != 0 {
		t.Errorf("TotalTrackers = %d, want 0", result.TotalTrackers)
	}
}

func TestNormalizeRawApps(t *testing.T) {
	n := newTestNormalizer()

	result := n.NormalizeRawApps([]RawPhoneApp{{
		PackageName: "com.instagram.android",
		AppName:     "Instagram",
		Permissions: []string{
			"android.permission.CAMERA",
			"android.permission.READ_CONTACTS",
			"com.google.android.gms.permission.AD_ID",
		},
	}})

	if !strings.HasPrefix(result.ScanID, "live-scan-") {
		t.Errorf("ScanID = %q, want live-scan- prefix", result.ScanID)
	}
	if result.DeviceModel != "Live Device" {
		t.Errorf("DeviceModel = %q, want Live Device", result.DeviceModel)
	}

	app := result.Apps[0]
	if !reflect.DeepEqual(app.DangerousPermissions, []string{"CAMERA", "READ_CONTACTS"}) {
		t.Errorf("DangerousPermissions = %v", app.DangerousPermissions)
	}
	if app.TrackerCount != 1 {
		t.Errorf("TrackerCount = %d, want 1", app.TrackerCount)
	}
	// 2 dangerous * 8 + 1 tracker * 10
	if app.RiskScore != 26 {
		t.Errorf("RiskScore = %d, want 26", app.RiskScore)
	}
}

func TestNormalizeRoundTripIsStable(t *testing.T) {
	n := newTestNormalizer()

	first := n.NormalizeRawApps([]RawPhoneApp{{
		PackageName: "com.whatsapp",
		AppName:     "WhatsApp",
		Permissions: []string{
			"android.permission.READ_CONTACTS",
			"android.permission.RECORD_AUDIO",
			"com.google.android.c2dm.permission.RECEIVE",
		},
	}})

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	payload, err := n.DetectPayload(encoded)
	if err != nil {
		t.Fatalf("re-detect: %v", err)
	}
	if payload.Kind != PayloadScan {
		t.Fatalf("canonical output detected as %v, want PayloadScan", payload.Kind)
	}

	second := n.NormalizeScan(payload.Scan)
	if !reflect.DeepEqual(first.Apps, second.Apps) {
		t.Errorf("re-normalizing canonical output changed apps:\nfirst:  %+v\nsecond: %+v", first.Apps, second.Apps)
	}
	if second.TotalTrackers != first.TotalTrackers || second.TotalDangerousPermissions != first.TotalDangerousPermissions {
		t.Errorf("totals drifted on round trip")
	}
}

func TestNormalizeCombined(t *testing.T) {
	n := newTestNormalizer()

	doc := `{
		"format": "consent-theater-combined",
		"scan_result": [{"packageName": "com.app", "appName": "App", "permissions": ["android.permission.CAMERA"]}],
		"vpn_log": [{"destination_host": "t.example", "is_tracker": true, "hour_of_day": 3}],
		"contacts": [{"name": "R", "is_ghost": true, "digital_footprint_score": 20}]
	}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}

	scan, vpnLog, contacts, err := n.NormalizeCombined(payload.Combined)
	if err != nil {
		t.Fatalf("NormalizeCombined: %v", err)
	}
	if scan.TotalApps != 1 {
		t.Errorf("TotalApps = %d, want 1", scan.TotalApps)
	}
	if len(vpnLog) != 1 || vpnLog[0].DestinationHost != "t.example" {
		t.Errorf("unexpected vpn log: %+v", vpnLog)
	}
	if len(contacts) != 1 || !contacts[0].IsGhost {
		t.Errorf("unexpected contacts: %+v", contacts)
	}
}

func TestNormalizeCombinedRejectsNestedCombined(t *testing.T) {
	n := newTestNormalizer()

	doc := `{
		"format": "consent-theater-combined",
		"scan_result": {"format": "consent-theater-combined", "scan_result": {"scan_id": "x", "apps": []}}
	}`
	payload, err := n.DetectPayload([]byte(doc))
	if err != nil {
		t.Fatalf("DetectPayload: %v", err)
	}

	_, _, _, err = n.NormalizeCombined(payload.Combined)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("error = %v, want FormatError for combined-in-combined", err)
	}
}

func TestDetectNetworkLog(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantOK  bool
		wantLen int
	}{
		{"bare array", `[{"destination_host": "a", "bytes_transferred": 10}]`, true, 1},
		{"entries wrapper", `{"entries": [{"destination_host": "a"}, {"destination_host": "b"}]}`, true, 2},
		{"connections wrapper", `{"connections": [{"destination_host": "a"}]}`, true, 1},
		{"empty entries wrapper", `{"entries": []}`, true, 0},
		{"array without marker", `[{"name": "x"}]`, false, 0},
		{"unrelated object", `{"foo": 1}`, false, 0},
		{"malformed", `[{`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, ok := DetectNetworkLog([]byte(tt.doc))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && len(entries) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(entries), tt.wantLen)
			}
		})
	}
}

func TestDetectContacts(t *testing.T) {
	good := `[{"name": "Asha", "is_ghost": false, "digital_footprint_score": 70}]`
	contacts, ok := DetectContacts([]byte(good))
	if !ok || len(contacts) != 1 || contacts[0].Name != "Asha" {
		t.Errorf("DetectContacts(good) = (%v, %v)", contacts, ok)
	}

	bad := []string{
		`[{"name": "Asha"}]`, // no ghost or footprint marker
		`[{"destination_host": "a"}]`,
		`{"name": "Asha"}`,
		`[]`,
	}
	for _, doc := range bad {
		if _, ok := DetectContacts([]byte(doc)); ok {
			t.Errorf("DetectContacts(%s) accepted, want reject", doc)
		}
	}
}
