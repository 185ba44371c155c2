package services

import (
	"strings"

	"consent-theater/internal/domain/models"
	"consent-theater/internal/taxonomy"
)

// TrackerDetector infers embedded tracking SDKs from permission-string
// fingerprints. It is a best-effort fallback for payloads that carry no
// explicit tracker data; when the input already names trackers, the detector
// is skipped for that app.
type TrackerDetector struct {
	patterns []taxonomy.TrackerPattern
}

// NewTrackerDetector creates a detector backed by the bundled pattern table.
func NewTrackerDetector() *TrackerDetector {
	return NewTrackerDetectorWithPatterns(taxonomy.TrackerPatterns)
}

// NewTrackerDetectorWithPatterns creates a detector with a substituted
// pattern table, used by tests.
func NewTrackerDetectorWithPatterns(patterns []taxonomy.TrackerPattern) *TrackerDetector {
	return &TrackerDetector{patterns: patterns}
}

// Detect walks the raw permission list against the pattern table and returns
// the matched trackers deduplicated by name, insertion order preserved.
// Multiple patterns may resolve to the same tracker; the first match wins.
func (d *TrackerDetector) Detect(permissions []string) []models.TrackerInfo {
	trackers := make([]models.TrackerInfo, 0)
	seen := make(map[string]bool)
	for _, perm := range permissions {
		for _, pat := range d.patterns {
			if strings.Contains(perm, pat.Pattern) && !seen[pat.Name] {
				seen[pat.Name] = true
				trackers = append(trackers, models.TrackerInfo{Name: pat.Name, Company: pat.Company})
			}
		}
	}
	return trackers
}
