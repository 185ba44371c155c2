package datastore

import (
	"testing"

	"consent-theater/internal/domain/models"
	"consent-theater/internal/streaming"
	"consent-theater/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func TestNewStoreStartsEmpty(t *testing.T) {
	s := NewStore(nil, testLogger())

	ds := s.Snapshot()
	if ds.Loaded() {
		t.Errorf("fresh store reports loaded")
	}
	if ds.VpnLog == nil || ds.Contacts == nil {
		t.Errorf("fresh snapshot has nil slices")
	}
	if s.Generation() != 0 {
		t.Errorf("Generation = %d, want 0", s.Generation())
	}
}

func TestReplace(t *testing.T) {
	s := NewStore(nil, testLogger())

	scan := &models.ScanResult{ScanID: "s-1", TotalApps: 1, Apps: []models.AppRecord{{AppName: "App"}}}
	ds := s.Replace(scan, nil, nil)

	if ds.Generation != 1 {
		t.Errorf("Generation = %d, want 1", ds.Generation)
	}
	if ds.LoadedAt.IsZero() {
		t.Errorf("LoadedAt not set")
	}
	if ds.VpnLog == nil || ds.Contacts == nil {
		t.Errorf("nil slices not normalized: %+v", ds)
	}
	if got := s.Snapshot(); got != ds {
		t.Errorf("Snapshot does not return the replaced dataset")
	}

	s.Replace(scan, nil, nil)
	if s.Generation() != 2 {
		t.Errorf("Generation = %d after second replace, want 2", s.Generation())
	}
}

func TestReplacePublishesEvent(t *testing.T) {
	bus := streaming.NewEventBus(testLogger())
	defer bus.Close()
	events, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	s := NewStore(bus, testLogger())
	scan := &models.ScanResult{ScanID: "s-1", TotalApps: 3, TotalTrackers: 2}
	s.Replace(scan, nil, nil)

	select {
	case ev := <-events:
		if ev.Generation != 1 || ev.ScanID != "s-1" || ev.TotalApps != 3 || ev.TotalTrackers != 2 {
			t.Errorf("unexpected event: %+v", ev)
		}
	default:
		t.Fatalf("no event published on replace")
	}
}
