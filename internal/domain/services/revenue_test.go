package services

import (
	"testing"

	"consent-theater/internal/domain/models"
)

func TestEstimateEmpty(t *testing.T) {
	e := NewRevenueEstimator()

	got := e.Estimate(nil)
	if got.TotalAnnualInr != 0 || got.TotalAnnualUsd != 0 || got.PerDay != 0 || got.PerHour != 0 {
		t.Errorf("empty estimate not all zeros: %+v", got)
	}
	if len(got.PerCompany) != 0 {
		t.Errorf("PerCompany = %v, want empty", got.PerCompany)
	}
}

func TestEstimateAggregatesByCompany(t *testing.T) {
	e := NewRevenueEstimator()

	apps := []models.AppRecord{
		{
			AppName: "Instagram",
			Trackers: []models.TrackerInfo{
				{Name: "Facebook SDK", Company: "Meta Platforms"},
				{Name: "Google Mobile Ads", Company: "Alphabet Inc."},
			},
		},
		{
			AppName: "Messenger",
			Trackers: []models.TrackerInfo{
				{Name: "Facebook SDK", Company: "Meta Platforms"},
			},
		},
	}
	got := e.Estimate(apps)

	// Meta 1040 + Alphabet 780
	if got.TotalAnnualInr != 1820 {
		t.Errorf("TotalAnnualInr = %d, want 1820", got.TotalAnnualInr)
	}
	if got.TotalAnnualUsd != 22 {
		t.Errorf("TotalAnnualUsd = %d, want 22", got.TotalAnnualUsd)
	}
	if got.PerDay != 5 {
		t.Errorf("PerDay = %d, want 5", got.PerDay)
	}
	if got.PerHour != 0.21 {
		t.Errorf("PerHour = %v, want 0.21", got.PerHour)
	}

	if len(got.PerCompany) != 2 {
		t.Fatalf("PerCompany length = %d, want 2", len(got.PerCompany))
	}
	meta := got.PerCompany[0]
	if meta.Company != "Meta Platforms" {
		t.Errorf("companies not sorted by revenue: first is %q", meta.Company)
	}
	if meta.TrackerCount != 2 {
		t.Errorf("Meta TrackerCount = %d, want 2", meta.TrackerCount)
	}
	if len(meta.Apps) != 2 {
		t.Errorf("Meta apps = %v, want both apps once each", meta.Apps)
	}
}

func TestEstimateUnknownCompanyFallback(t *testing.T) {
	e := NewRevenueEstimator()

	apps := []models.AppRecord{{
		AppName:  "App",
		Trackers: []models.TrackerInfo{{Name: "X SDK", Company: "Obscure Adtech Ltd"}},
	}}
	got := e.Estimate(apps)

	if got.TotalAnnualInr != 100 {
		t.Errorf("TotalAnnualInr = %d, want default 100", got.TotalAnnualInr)
	}
}

func TestEstimateBlankCompanyBucketsAsUnknown(t *testing.T) {
	e := NewRevenueEstimator()

	apps := []models.AppRecord{{
		AppName:  "App",
		Trackers: []models.TrackerInfo{{Name: "A"}, {Name: "B"}},
	}}
	got := e.Estimate(apps)

	if len(got.PerCompany) != 1 || got.PerCompany[0].Company != "Unknown" {
		t.Fatalf("PerCompany = %+v, want single Unknown bucket", got.PerCompany)
	}
	if got.PerCompany[0].TrackerCount != 2 {
		t.Errorf("TrackerCount = %d, want 2", got.PerCompany[0].TrackerCount)
	}
}
