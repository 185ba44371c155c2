package taxonomy

// TrackerPattern maps a permission-string fingerprint to the tracker SDK it
// identifies. Detection is substring based: ad-ID broadcast receivers, the
// ad-services attribution/topics APIs and push-messaging identifiers all leak
// which SDKs an app embeds even when no tracker list was shipped with the
// scan.
type TrackerPattern struct {
	Pattern string
	Name    string
	Company string
}

// TrackerPatterns is ordered; the first pattern that matches a permission
// wins for that permission, and multiple patterns may resolve to the same
// tracker name.
var TrackerPatterns = []TrackerPattern{
	{"com.google.android.gms.permission.AD_ID", "Google Mobile Ads", "Alphabet Inc."},
	{"com.google.android.c2dm.permission.RECEIVE", "Google Cloud Messaging", "Alphabet Inc."},
	{"com.google.android.finsky.permission.BIND_GET_INSTALL_REFERRER_SERVICE", "Google Play Install Referrer", "Alphabet Inc."},
	{"com.facebook.services.identity.FEO2", "Facebook SDK", "Meta Platforms"},
	{"com.google.android.gms.permission.ACTIVITY_RECOGNITION", "Google Activity Recognition", "Alphabet Inc."},
	{"ACCESS_ADSERVICES_ATTRIBUTION", "Ad Attribution API", "Google (Ad Services)"},
	{"ACCESS_ADSERVICES_AD_ID", "Ad ID Service", "Google (Ad Services)"},
	{"ACCESS_ADSERVICES_TOPICS", "Topics API (Ad Tracking)", "Google (Ad Services)"},
}
