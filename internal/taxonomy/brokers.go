package taxonomy

// DataBroker is one entry of the bundled broker directory used by the
// deletion-request generator.
type DataBroker struct {
	Name                string `json:"name"`
	DPOEmail            string `json:"dpo_email"`
	DeletionURL         string `json:"deletion_url"`
	Jurisdiction        string `json:"jurisdiction"` // "dpdpa" or "gdpr"
	TypicalResponseDays int    `json:"typical_response_days"`
	Category            string `json:"category"`
}

// DataBrokers is the bundled broker directory.
var DataBrokers = []DataBroker{
	{Name: "Meta Platforms", DPOEmail: "dpo@fb.com", DeletionURL: "https://www.facebook.com/help/delete_account", Jurisdiction: "gdpr", TypicalResponseDays: 30, Category: "Social Media"},
	{Name: "Alphabet Inc.", DPOEmail: "data-protection-office@google.com", DeletionURL: "https://myaccount.google.com/deleteservices", Jurisdiction: "gdpr", TypicalResponseDays: 30, Category: "Advertising & Search"},
	{Name: "True Software Scandinavia AB", DPOEmail: "privacy@truecaller.com", DeletionURL: "https://www.truecaller.com/unlisting", Jurisdiction: "gdpr", TypicalResponseDays: 14, Category: "Caller ID"},
	{Name: "InMobi", DPOEmail: "privacy@inmobi.com", DeletionURL: "https://www.inmobi.com/page/opt-out", Jurisdiction: "dpdpa", TypicalResponseDays: 30, Category: "Mobile Advertising"},
	{Name: "CleverTap", DPOEmail: "privacy@clevertap.com", DeletionURL: "https://clevertap.com/opt-out", Jurisdiction: "dpdpa", TypicalResponseDays: 30, Category: "Engagement Analytics"},
	{Name: "ByteDance", DPOEmail: "privacy@tiktok.com", DeletionURL: "https://www.tiktok.com/legal/report/privacy", Jurisdiction: "gdpr", TypicalResponseDays: 30, Category: "Social Media"},
}
