package taxonomy

// BrandColors maps tracker companies to their brand hex color. Presentation
// data only; the dashboard frontend uses it for treemaps and the globe.
var BrandColors = map[string]string{
	"Meta Platforms":        "#0081FB",
	"Alphabet Inc.":         "#4285F4",
	"Google (Ad Services)":  "#34A853",
	"Amazon.com Inc.":       "#FF9900",
	"ByteDance":             "#FE2C55",
	"Unity Technologies":    "#808080",
	"AppsFlyer":             "#00C2A8",
	"AppLovin":              "#0A7CFF",
	"Branch Metrics":        "#4EA5D9",
	"X Corp":                "#1D9BF0",
	"Microsoft Corporation": "#00A4EF",
	"Snap Inc.":             "#FFFC00",
	"InMobi":                "#E4002B",
	"CleverTap":             "#EB3A44",
	"Criteo":                "#F48120",
	"Oracle Corporation":    "#C74634",
	"Adobe Inc.":            "#FA0F00",
	"Twilio":                "#F22F46",
	"Yahoo":                 "#6001D2",
	"Sentry":                "#362D59",
	"Mixpanel":              "#7856FF",
	"Amplitude":             "#1E61F0",
	"OneSignal":             "#E54B4D",
}
