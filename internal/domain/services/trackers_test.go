package services

import "testing"

func TestDetectTrackers(t *testing.T) {
	d := NewTrackerDetector()

	got := d.Detect([]string{
		"android.permission.CAMERA",
		"com.google.android.gms.permission.AD_ID",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 tracker, got %d: %v", len(got), got)
	}
	if got[0].Name != "Google Mobile Ads" || got[0].Company != "Alphabet Inc." {
		t.Errorf("unexpected tracker: %+v", got[0])
	}
}

func TestDetectTrackersDedupesByName(t *testing.T) {
	d := NewTrackerDetector()

	got := d.Detect([]string{
		"com.google.android.gms.permission.AD_ID",
		"com.google.android.gms.permission.AD_ID",
	})
	if len(got) != 1 {
		t.Errorf("duplicate permission produced %d trackers, want 1", len(got))
	}
}

func TestDetectTrackersSubstringMatch(t *testing.T) {
	d := NewTrackerDetector()

	// The ad-services fingerprints match inside the full namespaced form.
	got := d.Detect([]string{"android.permission.ACCESS_ADSERVICES_TOPICS"})
	if len(got) != 1 || got[0].Name != "Topics API (Ad Tracking)" {
		t.Errorf("expected Topics API match, got %v", got)
	}
}

func TestDetectTrackersEmpty(t *testing.T) {
	d := NewTrackerDetector()

	got := d.Detect([]string{"android.permission.INTERNET"})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
