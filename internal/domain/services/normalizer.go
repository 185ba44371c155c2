package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"consent-theater/internal/domain/models"
	"consent-theater/pkg/logger"
)

// CombinedFormatTag is the discriminator value identifying a combined
// export payload.
const CombinedFormatTag = "consent-theater-combined"

// PayloadKind discriminates the recognized input shapes.
type PayloadKind int

const (
	PayloadUnknown PayloadKind = iota
	PayloadCombined
	PayloadScan
	PayloadRawApps
)

// Payload is the result of shape detection: exactly one of the variant
// fields matching Kind is populated.
type Payload struct {
	Kind     PayloadKind
	Combined *CombinedPayload
	Scan     *WireScan
	RawApps  []RawPhoneApp
}

// CombinedPayload is a single document bundling scan result, network log and
// contacts, produced by the scanner's export endpoint.
type CombinedPayload struct {
	Format     string                   `json:"format"`
	ScanResult json.RawMessage          `json:"scan_result"`
	VpnLog     []models.NetworkLogEntry `json:"vpn_log"`
	Contacts   []models.Contact         `json:"contacts"`
}

// WireScan is a pre-shaped scan result as sent over the wire. Apps arrive in
// one of several permission encodings and with optional derived fields, so
// the wire form is kept separate from the canonical model.
type WireScan struct {
	ScanID         string    `json:"scan_id"`
	DeviceModel    string    `json:"device_model"`
	AndroidVersion string    `json:"android_version"`
	ScanTimestamp  string    `json:"scan_timestamp"`
	Apps           []WireApp `json:"apps"`
}

// WireApp is one app entry of a pre-shaped scan. Permissions may be a flat
// array or a {dangerous, normal} object; DangerousPermissions is nil when
// the source did not compute it. Extra tracker fields are ignored by the
// decoder.
type WireApp struct {
	PackageName          string               `json:"package_name"`
	AppName              string               `json:"app_name"`
	Permissions          json.RawMessage      `json:"permissions"`
	DangerousPermissions []string             `json:"dangerous_permissions"`
	Trackers             []models.TrackerInfo `json:"trackers"`
	RiskScore            int                  `json:"risk_score"`
}

// RawPhoneApp is one entry of a raw phone scan, camelCase as emitted by the
// Android PackageManager collector.
type RawPhoneApp struct {
	PackageName string   `json:"packageName"`
	AppName     string   `json:"appName"`
	VersionName string   `json:"versionName,omitempty"`
	Permissions []string `json:"permissions"`
}

// Normalizer converts any recognized input shape into the canonical
// ScanResult model, deriving dangerous permissions, trackers and risk scores
// where the source did not supply them.
type Normalizer struct {
	classifier *PermissionClassifier
	detector   *TrackerDetector
	logger     *logger.Logger
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(classifier *PermissionClassifier, detector *TrackerDetector, log *logger.Logger) *Normalizer {
	return &Normalizer{
		classifier: classifier,
		detector:   detector,
		logger:     log.WithComponent("normalizer"),
	}
}

// DetectPayload classifies a decoded JSON document into one of the
// recognized shapes. The rules are ordered and mutually exclusive; the first
// match wins:
//
//  1. object with format == "consent-theater-combined"  -> combined payload
//  2. object with both scan_id and apps                 -> pre-shaped scan
//  3. array of {packageName, permissions} objects       -> raw phone scan
//
// Anything else fails with a FormatError. Malformed JSON fails with a
// ParseError.
func (n *Normalizer) DetectPayload(raw []byte) (*Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &FormatError{Message: "empty payload"}
	}

	switch trimmed[0] {
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, &ParseError{Err: err}
		}

		if rawFormat, ok := fields["format"]; ok {
			var format string
			if err := json.Unmarshal(rawFormat, &format); err == nil && format == CombinedFormatTag {
				var combined CombinedPayload
				if err := json.Unmarshal(trimmed, &combined); err != nil {
					return nil, &ParseError{Err: err}
				}
				return &Payload{Kind: PayloadCombined, Combined: &combined}, nil
			}
		}

		_, hasScanID := fields["scan_id"]
		_, hasApps := fields["apps"]
		if hasScanID && hasApps {
			var scan WireScan
			if err := json.Unmarshal(trimmed, &scan); err != nil {
				return nil, &ParseError{Err: err}
			}
			return &Payload{Kind: PayloadScan, Scan: &scan}, nil
		}

	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, &ParseError{Err: err}
		}
		if len(elements) > 0 && looksLikeRawApp(elements[0]) {
			var apps []RawPhoneApp
			if err := json.Unmarshal(trimmed, &apps); err != nil {
				return nil, &ParseError{Err: err}
			}
			return &Payload{Kind: PayloadRawApps, RawApps: apps}, nil
		}

	default:
		if !json.Valid(trimmed) {
			return nil, &ParseError{Err: errNotJSON}
		}
	}

	return nil, &FormatError{Message: "unrecognized payload shape"}
}

// NormalizeScan converts a pre-shaped wire scan into the canonical model.
// Permission lists are flattened and prefix-stripped; dangerous permissions
// are taken from the input when supplied and derived otherwise; the derived
// counters are always recomputed, never trusted.
func (n *Normalizer) NormalizeScan(scan *WireScan) *models.ScanResult {
	result := &models.ScanResult{
		ScanID:         scan.ScanID,
		DeviceModel:    scan.DeviceModel,
		AndroidVersion: scan.AndroidVersion,
		ScanTimestamp:  scan.ScanTimestamp,
		Apps:           make([]models.AppRecord, 0, len(scan.Apps)),
	}

	for _, app := range scan.Apps {
		flat := n.flattenPermissions(app.Permissions)
		for i, perm := range flat {
			flat[i] = n.classifier.StripPrefix(perm)
		}
		flat = dedupeStrings(flat)

		var dangerous []string
		if app.DangerousPermissions != nil {
			stripped := make([]string, len(app.DangerousPermissions))
			for i, perm := range app.DangerousPermissions {
				stripped[i] = n.classifier.StripPrefix(perm)
			}
			dangerous = dedupeStrings(stripped)
		} else {
			dangerous = n.classifier.FilterDangerous(flat)
		}

		trackers := dedupeTrackers(app.Trackers)

		result.Apps = append(result.Apps, models.AppRecord{
			PackageName:              app.PackageName,
			AppName:                  app.AppName,
			Permissions:              flat,
			DangerousPermissions:     dangerous,
			Trackers:                 trackers,
			TrackerCount:             len(trackers),
			DangerousPermissionCount: len(dangerous),
			RiskScore:                app.RiskScore,
		})
	}

	result.RecomputeTotals()
	return result
}

// NormalizeRawApps synthesizes a full ScanResult from a raw phone scan,
// running each entry through the classifier, the tracker detector and the
// risk scorer. The result carries a generated scan id and the ingestion
// timestamp.
func (n *Normalizer) NormalizeRawApps(rawApps []RawPhoneApp) *models.ScanResult {
	result := &models.ScanResult{
		ScanID:         "live-scan-" + uuid.New().String(),
		DeviceModel:    "Live Device",
		AndroidVersion: "Unknown",
		ScanTimestamp:  time.Now().UTC().Format(time.RFC3339),
		Apps:           make([]models.AppRecord, 0, len(rawApps)),
	}

	for _, raw := range rawApps {
		dangerous := n.classifier.FilterDangerous(raw.Permissions)
		// Detect on the raw list: tracker fingerprints live outside the
		// stripped namespace.
		trackers := n.detector.Detect(raw.Permissions)

		permissions := make([]string, len(raw.Permissions))
		for i, perm := range raw.Permissions {
			permissions[i] = n.classifier.StripPrefix(perm)
		}
		permissions = dedupeStrings(permissions)

		result.Apps = append(result.Apps, models.AppRecord{
			PackageName:              raw.PackageName,
			AppName:                  raw.AppName,
			Permissions:              permissions,
			DangerousPermissions:     dangerous,
			Trackers:                 trackers,
			TrackerCount:             len(trackers),
			DangerousPermissionCount: len(dangerous),
			RiskScore:                RiskScore(len(dangerous), len(trackers)),
		})
	}

	result.RecomputeTotals()
	return result
}

// NormalizeCombined unpacks a combined payload, recursively normalizing the
// nested scan result (which may itself be pre-shaped or raw).
func (n *Normalizer) NormalizeCombined(combined *CombinedPayload) (*models.ScanResult, []models.NetworkLogEntry, []models.Contact, error) {
	if len(combined.ScanResult) == 0 {
		return nil, nil, nil, &FormatError{Message: "combined payload missing scan_result"}
	}

	payload, err := n.DetectPayload(combined.ScanResult)
	if err != nil {
		return nil, nil, nil, err
	}

	var scan *models.ScanResult
	switch payload.Kind {
	case PayloadScan:
		scan = n.NormalizeScan(payload.Scan)
	case PayloadRawApps:
		scan = n.NormalizeRawApps(payload.RawApps)
	default:
		return nil, nil, nil, &FormatError{Message: "combined payload scan_result has unrecognized shape"}
	}

	return scan, combined.VpnLog, combined.Contacts, nil
}

// DetectNetworkLog recognizes the network-log wire shapes: a bare array
// whose entries carry destination_host, or an object wrapping the array
// under "entries" or "connections".
func DetectNetworkLog(raw []byte) ([]models.NetworkLogEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}

	switch trimmed[0] {
	case '[':
		var elements []map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil || len(elements) == 0 {
			return nil, false
		}
		if _, ok := elements[0]["destination_host"]; !ok {
			return nil, false
		}
		var entries []models.NetworkLogEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, false
		}
		return entries, true

	case '{':
		var wrapper struct {
			Entries     []models.NetworkLogEntry `json:"entries"`
			Connections []models.NetworkLogEntry `json:"connections"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, false
		}
		if wrapper.Entries != nil {
			return wrapper.Entries, true
		}
		if wrapper.Connections != nil {
			return wrapper.Connections, true
		}
	}

	return nil, false
}

// DetectContacts recognizes a bare array of contact records.
func DetectContacts(raw []byte) ([]models.Contact, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var elements []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil || len(elements) == 0 {
		return nil, false
	}
	if _, ok := elements[0]["name"]; !ok {
		return nil, false
	}
	_, hasGhost := elements[0]["is_ghost"]
	_, hasScore := elements[0]["digital_footprint_score"]
	if !hasGhost && !hasScore {
		return nil, false
	}

	var contacts []models.Contact
	if err := json.Unmarshal(trimmed, &contacts); err != nil {
		return nil, false
	}
	return contacts, true
}

// flattenPermissions reconciles the two permission encodings: a flat array,
// or an object with dangerous/normal sub-lists flattened in that order.
func (n *Normalizer) flattenPermissions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat
	}

	var grouped struct {
		Dangerous []string `json:"dangerous"`
		Normal    []string `json:"normal"`
	}
	if err := json.Unmarshal(raw, &grouped); err == nil {
		return append(grouped.Dangerous, grouped.Normal...)
	}

	return []string{}
}

// looksLikeRawApp reports whether an array element carries the raw phone
// scan marker fields.
func looksLikeRawApp(element json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil {
		return false
	}
	_, hasPackage := fields["packageName"]
	_, hasPerms := fields["permissions"]
	return hasPackage && hasPerms
}

func dedupeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func dedupeTrackers(trackers []models.TrackerInfo) []models.TrackerInfo {
	out := make([]models.TrackerInfo, 0, len(trackers))
	seen := make(map[string]bool, len(trackers))
	for _, t := range trackers {
		if !seen[t.Name] {
			seen[t.Name] = true
			out = append(out, t)
		}
	}
	return out
}

var errNotJSON = errors.New("not a JSON document")
