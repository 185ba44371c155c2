// Package taxonomy holds the fixed lookup tables the dashboard core is built
// on: the dangerous-permission list, tracker SDK fingerprints, demographic
// signals, company revenue estimates and the bundled placeholder data.
//
// Tables are plain versioned Go values loaded once at startup so tests can
// substitute their own copies instead of patching inline literals.
package taxonomy

// Version identifies the revision of the bundled tables.
const Version = "2024.1"

// PermissionPrefixes are the namespace prefixes stripped from raw permission
// identifiers before taxonomy membership checks. Matching is case-insensitive.
var PermissionPrefixes = []string{
	"android.permission.",
}

// DangerousPermissions is the fixed list of 15 privacy-sensitive Android
// permissions, in canonical short form. Order is stable and part of the
// published vocabulary.
var DangerousPermissions = []string{
	"READ_CONTACTS",
	"WRITE_CONTACTS",
	"READ_CALL_LOG",
	"CAMERA",
	"RECORD_AUDIO",
	"ACCESS_FINE_LOCATION",
	"ACCESS_COARSE_LOCATION",
	"READ_PHONE_STATE",
	"READ_EXTERNAL_STORAGE",
	"WRITE_EXTERNAL_STORAGE",
	"READ_SMS",
	"SEND_SMS",
	"READ_CALENDAR",
	"BODY_SENSORS",
	"ACTIVITY_RECOGNITION",
}
