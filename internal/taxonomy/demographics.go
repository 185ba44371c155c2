package taxonomy

// AppSignal is the demographic signal attached to a known package name: a
// signed age weight, a gender lean, an income bracket and an interest tag.
type AppSignal struct {
	AgeWeight int
	Gender    string // "neutral", "male-lean" or "female-lean"
	Income    string // "low", "low-medium", "medium", "medium-high", "high"
	Interest  string
}

// AppSignals maps package names to demographic signals.
var AppSignals = map[string]AppSignal{
	"com.instagram.android":             {AgeWeight: -5, Gender: "neutral", Income: "medium", Interest: "Social Media"},
	"com.facebook.katana":               {AgeWeight: 5, Gender: "neutral", Income: "medium", Interest: "Social Media"},
	"com.whatsapp":                      {AgeWeight: 0, Gender: "neutral", Income: "medium", Interest: "Messaging"},
	"com.zhiliaoapp.musically":          {AgeWeight: -10, Gender: "female-lean", Income: "low-medium", Interest: "Short-form Video"},
	"com.twitter.android":               {AgeWeight: 0, Gender: "male-lean", Income: "medium-high", Interest: "News & Politics"},
	"com.linkedin.android":              {AgeWeight: 5, Gender: "neutral", Income: "high", Interest: "Professional"},
	"com.spotify.music":                 {AgeWeight: -3, Gender: "neutral", Income: "medium-high", Interest: "Music"},
	"com.google.android.youtube":        {AgeWeight: 0, Gender: "neutral", Income: "medium", Interest: "Video"},
	"com.amazon.mShop.android.shopping": {AgeWeight: 3, Gender: "neutral", Income: "medium-high", Interest: "Shopping"},
	"com.flipkart.android":              {AgeWeight: 0, Gender: "neutral", Income: "medium", Interest: "Shopping"},
	"com.phonepe.app":                   {AgeWeight: 0, Gender: "neutral", Income: "medium", Interest: "Finance"},
	"com.dream11.fantasy.cricket":       {AgeWeight: -3, Gender: "male-lean", Income: "medium", Interest: "Sports & Gaming"},
	"com.truecaller":                    {AgeWeight: 0, Gender: "neutral", Income: "medium", Interest: "Communication"},
	"com.king.candycrushsaga":           {AgeWeight: 5, Gender: "female-lean", Income: "medium", Interest: "Casual Gaming"},
	"com.snapchat.android":              {AgeWeight: -8, Gender: "neutral", Income: "low-medium", Interest: "Social Media"},
}

// PermissionInterests maps dangerous-permission short names to the interest
// an advertiser would infer from them.
var PermissionInterests = map[string]string{
	"ACCESS_FINE_LOCATION": "Location-aware Services",
	"CAMERA":               "Photography & AR",
	"RECORD_AUDIO":         "Voice & Audio",
	"READ_CONTACTS":        "Social Networking",
	"READ_CALENDAR":        "Scheduling & Productivity",
	"BODY_SENSORS":         "Health & Fitness",
	"ACTIVITY_RECOGNITION": "Fitness Tracking",
}

// CommerceTrackerCompanies are tracker companies whose presence signals a
// mobile-commerce interest.
var CommerceTrackerCompanies = []string{"InMobi", "CleverTap"}
