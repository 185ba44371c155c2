package models

// NetworkLogEntry is one observed outbound connection from the device,
// captured over a single observation window. Entries are immutable once
// ingested.
type NetworkLogEntry struct {
	Timestamp          string  `json:"timestamp"`
	SourceApp          string  `json:"source_app"`
	SourceAppName      string  `json:"source_app_name"`
	DestinationHost    string  `json:"destination_host"`
	DestinationIP      string  `json:"destination_ip"`
	DestinationCompany string  `json:"destination_company"`
	DestinationPurpose string  `json:"destination_purpose"`
	DestinationCountry string  `json:"destination_country"`
	DestinationCity    string  `json:"destination_city"`
	DestinationLat     float64 `json:"destination_lat"`
	DestinationLng     float64 `json:"destination_lng"`
	BytesTransferred   int64   `json:"bytes_transferred"`
	IsTracker          bool    `json:"is_tracker"`
	HourOfDay          int     `json:"hour_of_day"`
	UserWasActive      bool    `json:"user_was_active"`
}
