package taxonomy

// DefaultARPUInr is the annual per-user revenue assumed for tracker
// companies missing from the table.
const DefaultARPUInr = 100

// CompanyARPUInr maps a tracker company to its estimated annual per-user
// revenue in INR (India-specific values).
var CompanyARPUInr = map[string]int{
	"Meta Platforms":                1040,
	"Alphabet Inc.":                 780,
	"Amazon.com Inc.":               550,
	"ByteDance":                     420,
	"Unity Technologies":            310,
	"AppsFlyer":                     180,
	"AppLovin":                      250,
	"Branch Metrics":                120,
	"X Corp":                        190,
	"Microsoft Corporation":         340,
	"Snap Inc.":                     270,
	"InMobi":                        380,
	"Braze":                         90,
	"CleverTap":                     150,
	"comScore":                      160,
	"Criteo":                        220,
	"Oracle Corporation":            200,
	"Adobe Inc.":                    280,
	"Twilio":                        110,
	"Yahoo":                         130,
	"Sentry":                        60,
	"True Software Scandinavia AB":  210,
	"Digital Turbine":               140,
	"PubMatic":                      170,
	"Taboola":                       100,
	"Outbrain":                      95,
	"Mixpanel":                      80,
	"Amplitude":                     85,
	"OneSignal":                     70,
	"Zynga":                         200,
}

// InrPerUsd is the approximate conversion rate used for the USD figure.
const InrPerUsd = 83
