package models

// Contact is a person from the device's address book together with what the
// exposed services already know about them. A ghost contact appears in the
// address book but holds no account on any of the services that received the
// contact list.
type Contact struct {
	Name                  string   `json:"name"`
	IsGhost               bool     `json:"is_ghost"`
	DigitalFootprintScore int      `json:"digital_footprint_score"`
	ExposedTo             []string `json:"exposed_to"`
	ExposedByApps         []string `json:"exposed_by_apps"`
}
