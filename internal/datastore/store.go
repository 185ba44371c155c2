// Package datastore holds the single in-memory dataset snapshot. There is no
// persistence: the snapshot lives for the process lifetime and is replaced
// wholesale on each successful ingestion.
package datastore

import (
	"sync"
	"time"

	"consent-theater/internal/domain/models"
	"consent-theater/internal/streaming"
	"consent-theater/pkg/logger"
)

// Store guards the current dataset snapshot. Readers get the snapshot
// pointer and must treat it as immutable; writers go through Replace, which
// assigns a monotonically increasing generation under the lock so that
// overlapping ingestions resolve to an explicit last-to-finish-wins order.
type Store struct {
	logger *logger.Logger
	bus    *streaming.EventBus

	mu         sync.RWMutex
	current    *models.Dataset
	generation uint64
}

// NewStore creates an empty store. bus may be nil.
func NewStore(bus *streaming.EventBus, log *logger.Logger) *Store {
	return &Store{
		logger:  log.WithComponent("datastore"),
		bus:     bus,
		current: &models.Dataset{VpnLog: []models.NetworkLogEntry{}, Contacts: []models.Contact{}},
	}
}

// Snapshot returns the current dataset. The returned value is shared and
// must not be mutated.
func (s *Store) Snapshot() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Generation returns the current snapshot generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Replace swaps in a new snapshot built from the given parts and returns it.
// nil slices are normalized to empty ones so consumers never see null JSON.
func (s *Store) Replace(scan *models.ScanResult, vpnLog []models.NetworkLogEntry, contacts []models.Contact) *models.Dataset {
	if vpnLog == nil {
		vpnLog = []models.NetworkLogEntry{}
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	s.mu.Lock()
	s.generation++
	next := &models.Dataset{
		ScanResult: scan,
		VpnLog:     vpnLog,
		Contacts:   contacts,
		Generation: s.generation,
		LoadedAt:   time.Now().UTC(),
	}
	s.current = next
	s.mu.Unlock()

	scanID := ""
	totalApps, totalTrackers := 0, 0
	if scan != nil {
		scanID = scan.ScanID
		totalApps = scan.TotalApps
		totalTrackers = scan.TotalTrackers
	}

	s.logger.Info().
		Uint64("generation", next.Generation).
		Str("scan_id", scanID).
		Int("apps", totalApps).
		Int("vpn_entries", len(vpnLog)).
		Int("contacts", len(contacts)).
		Msg("dataset replaced")

	if s.bus != nil {
		s.bus.Publish(&streaming.DatasetEvent{
			Generation:    next.Generation,
			ScanID:        scanID,
			TotalApps:     totalApps,
			TotalTrackers: totalTrackers,
			LoadedAt:      next.LoadedAt,
		})
	}

	return next
}
