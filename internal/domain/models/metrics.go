package models

// DemographicProfile is what an advertiser could plausibly infer about the
// device owner from the installed-app inventory alone.
type DemographicProfile struct {
	InferredGender string   `json:"inferred_gender"`
	AgeRange       string   `json:"age_range"`
	IncomeLevel    string   `json:"income_level"`
	Interests      []string `json:"interests"`
	Location       string   `json:"location"`
	Confidence     int      `json:"confidence"`
}

// CompanyRevenue is one tracker company's share of the revenue estimate.
type CompanyRevenue struct {
	Company      string   `json:"company"`
	AnnualInr    int      `json:"annual_inr"`
	TrackerCount int      `json:"tracker_count"`
	Apps         []string `json:"apps"`
}

// RevenueBreakdown estimates what the observed tracker companies earn per
// year from this one user's data.
type RevenueBreakdown struct {
	TotalAnnualInr int              `json:"total_annual_inr"`
	TotalAnnualUsd int              `json:"total_annual_usd"`
	PerCompany     []CompanyRevenue `json:"per_company"`
	PerDay         int              `json:"per_day"`
	PerHour        float64          `json:"per_hour"`
}

// TrustReport is the blended 0-100 trust score with its letter grade and the
// sub-scores it was blended from.
type TrustReport struct {
	Score             int     `json:"score"`
	Grade             string  `json:"grade"`
	GradeLabel        string  `json:"grade_label"`
	TrustFromRisk     float64 `json:"trust_from_risk"`
	TrustFromGhosts   float64 `json:"trust_from_ghosts"`
	TrustFromTrackers float64 `json:"trust_from_trackers"`
	TrustFromPerms    float64 `json:"trust_from_perms"`
}

// GraphNode is a node in the contagion graph: the central user or one
// address-book contact.
type GraphNode struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"` // "user", "contact" or "ghost"
	FootprintScore int      `json:"footprint_score"`
	ExposedTo      []string `json:"exposed_to"`
	Severity       string   `json:"severity"` // "critical", "elevated" or "low"
	Val            int      `json:"val"`
}

// GraphLink connects the user node to a contact node.
type GraphLink struct {
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	SharedApps []string `json:"shared_apps"`
}

// ContagionGraph is the user-centered exposure graph over the contact set.
type ContagionGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// HourActivity is one bucket of the 24-hour network timeline.
type HourActivity struct {
	Hour        int   `json:"hour"`
	Connections int   `json:"connections"`
	TotalBytes  int64 `json:"total_bytes"`
	IsSleeping  bool  `json:"is_sleeping"`
}

// ActivitySummary aggregates the network log for the scoreboard and
// timeline views.
type ActivitySummary struct {
	TotalConnections    int            `json:"total_connections"`
	TrackerConnections  int            `json:"tracker_connections"`
	TotalDataKB         int64          `json:"total_data_kb"`
	InactiveConnections int            `json:"inactive_connections"`
	SleepingConnections int            `json:"sleeping_connections"`
	Hourly              []HourActivity `json:"hourly"`
}

// DeletionTemplate is a generated data-erasure request letter.
type DeletionTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
