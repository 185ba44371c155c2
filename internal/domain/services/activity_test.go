package services

import (
	"testing"

	"consent-theater/internal/domain/models"
)

func TestSummarizeActivityEmpty(t *testing.T) {
	got := SummarizeActivity(nil)

	if got.TotalConnections != 0 || got.TrackerConnections != 0 || got.TotalDataKB != 0 {
		t.Errorf("empty summary not zeroed: %+v", got)
	}
	if len(got.Hourly) != 24 {
		t.Fatalf("Hourly length = %d, want 24", len(got.Hourly))
	}
	for h, bucket := range got.Hourly {
		if bucket.Hour != h {
			t.Errorf("bucket %d labeled hour %d", h, bucket.Hour)
		}
		wantSleeping := h <= 6
		if bucket.IsSleeping != wantSleeping {
			t.Errorf("hour %d IsSleeping = %v, want %v", h, bucket.IsSleeping, wantSleeping)
		}
	}
}

func TestSummarizeActivityCounts(t *testing.T) {
	log := []models.NetworkLogEntry{
		{DestinationHost: "t.example", BytesTransferred: 2048, IsTracker: true, HourOfDay: 2, UserWasActive: false},
		{DestinationHost: "a.example", BytesTransferred: 1024, IsTracker: false, HourOfDay: 9, UserWasActive: true},
		{DestinationHost: "b.example", BytesTransferred: 1024, IsTracker: false, HourOfDay: 9, UserWasActive: true},
	}
	got := SummarizeActivity(log)

	if got.TotalConnections != 3 {
		t.Errorf("TotalConnections = %d, want 3", got.TotalConnections)
	}
	if got.TrackerConnections != 1 {
		t.Errorf("TrackerConnections = %d, want 1", got.TrackerConnections)
	}
	if got.InactiveConnections != 1 {
		t.Errorf("InactiveConnections = %d, want 1", got.InactiveConnections)
	}
	if got.SleepingConnections != 1 {
		t.Errorf("SleepingConnections = %d, want 1", got.SleepingConnections)
	}
	if got.TotalDataKB != 4 {
		t.Errorf("TotalDataKB = %d, want 4", got.TotalDataKB)
	}
	if got.Hourly[2].Connections != 1 || got.Hourly[2].TotalBytes != 2048 {
		t.Errorf("hour 2 bucket = %+v", got.Hourly[2])
	}
	if got.Hourly[9].Connections != 2 || got.Hourly[9].TotalBytes != 2048 {
		t.Errorf("hour 9 bucket = %+v", got.Hourly[9])
	}
}

func TestSummarizeActivityIgnoresOutOfRangeHours(t *testing.T) {
	log := []models.NetworkLogEntry{
		{DestinationHost: "x.example", BytesTransferred: 512, HourOfDay: 24},
		{DestinationHost: "y.example", BytesTransferred: 512, HourOfDay: -1},
	}
	got := SummarizeActivity(log)

	if got.TotalConnections != 2 {
		t.Errorf("TotalConnections = %d, want 2", got.TotalConnections)
	}
	for _, bucket := range got.Hourly {
		if bucket.Connections != 0 {
			t.Errorf("out-of-range hour landed in bucket %d", bucket.Hour)
		}
	}
	if got.TotalDataKB != 1 {
		t.Errorf("TotalDataKB = %d, want 1 (bytes still counted)", got.TotalDataKB)
	}
}
