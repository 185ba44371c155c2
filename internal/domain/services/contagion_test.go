package services

import (
	"reflect"
	"testing"

	"consent-theater/internal/domain/models"
)

func TestBuildContagionGraphEmpty(t *testing.T) {
	got := BuildContagionGraph(nil, nil)

	if len(got.Nodes) != 1 {
		t.Fatalf("Nodes = %d, want only the user node", len(got.Nodes))
	}
	user := got.Nodes[0]
	if user.ID != "user" || user.Name != "You" || user.Type != "user" {
		t.Errorf("unexpected user node: %+v", user)
	}
	if user.FootprintScore != 100 || user.Severity != "critical" {
		t.Errorf("user node score/severity = %d/%s", user.FootprintScore, user.Severity)
	}
	if len(got.Links) != 0 {
		t.Errorf("Links = %d, want 0", len(got.Links))
	}
}

func TestBuildContagionGraph(t *testing.T) {
	apps := []models.AppRecord{
		{AppName: "Instagram", Trackers: []models.TrackerInfo{
			{Name: "Facebook SDK", Company: "Meta Platforms"},
			{Name: "Google Mobile Ads", Company: "Alphabet Inc."},
		}},
		{AppName: "Messenger", Trackers: []models.TrackerInfo{
			{Name: "Facebook SDK", Company: "Meta Platforms"},
		}},
	}
	contacts := []models.Contact{
		{Name: "Asha", IsGhost: false, DigitalFootprintScore: 80, ExposedByApps: []string{"WhatsApp"}},
		{Name: "Dinesh", IsGhost: true, DigitalFootprintScore: 30},
	}
	got := BuildContagionGraph(apps, contacts)

	if len(got.Nodes) != 3 || len(got.Links) != 2 {
		t.Fatalf("graph size = %d nodes / %d links, want 3/2", len(got.Nodes), len(got.Links))
	}

	user := got.Nodes[0]
	wantExposed := []string{"Meta Platforms", "Alphabet Inc."}
	if !reflect.DeepEqual(user.ExposedTo, wantExposed) {
		t.Errorf("user ExposedTo = %v, want deduped %v", user.ExposedTo, wantExposed)
	}

	asha := got.Nodes[1]
	if asha.ID != "contact-Asha" || asha.Type != "contact" || asha.Val != 7 {
		t.Errorf("unexpected contact node: %+v", asha)
	}
	if asha.Severity != "critical" {
		t.Errorf("Asha severity = %q, want critical for score 80", asha.Severity)
	}

	dinesh := got.Nodes[2]
	if dinesh.Type != "ghost" || dinesh.Val != 5 {
		t.Errorf("unexpected ghost node: %+v", dinesh)
	}
	if dinesh.Severity != "low" {
		t.Errorf("Dinesh severity = %q, want low for score 30", dinesh.Severity)
	}

	link := got.Links[0]
	if link.Source != "user" || link.Target != "contact-Asha" {
		t.Errorf("unexpected link: %+v", link)
	}
	if !reflect.DeepEqual(link.SharedApps, []string{"WhatsApp"}) {
		t.Errorf("SharedApps = %v", link.SharedApps)
	}
}

func TestExposureSeverity(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "critical"}, {71, "critical"},
		{70, "elevated"}, {41, "elevated"},
		{40, "low"}, {0, "low"},
	}
	for _, tt := range tests {
		if got := exposureSeverity(tt.score); got != tt.want {
			t.Errorf("exposureSeverity(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
