package taxonomy

import "consent-theater/internal/domain/models"

// PlaceholderContacts is the bundled contact set used when an ingested
// payload carries no contact data. The names are fictional; the exposure
// shapes mirror what the scanner reports for a typical address book.
var PlaceholderContacts = []models.Contact{
	{Name: "Aarav Sharma", IsGhost: false, DigitalFootprintScore: 82, ExposedTo: []string{"Meta Platforms", "Alphabet Inc."}, ExposedByApps: []string{"WhatsApp", "Instagram"}},
	{Name: "Priya Nair", IsGhost: false, DigitalFootprintScore: 67, ExposedTo: []string{"Meta Platforms", "True Software Scandinavia AB"}, ExposedByApps: []string{"WhatsApp", "Truecaller"}},
	{Name: "Rohan Mehta", IsGhost: true, DigitalFootprintScore: 31, ExposedTo: []string{"Meta Platforms"}, ExposedByApps: []string{"WhatsApp"}},
	{Name: "Sneha Iyer", IsGhost: false, DigitalFootprintScore: 74, ExposedTo: []string{"Alphabet Inc.", "Snap Inc."}, ExposedByApps: []string{"Snapchat", "Gmail"}},
	{Name: "Vikram Reddy", IsGhost: true, DigitalFootprintScore: 18, ExposedTo: []string{"True Software Scandinavia AB"}, ExposedByApps: []string{"Truecaller"}},
	{Name: "Ananya Das", IsGhost: false, DigitalFootprintScore: 58, ExposedTo: []string{"Meta Platforms", "ByteDance"}, ExposedByApps: []string{"Instagram", "WhatsApp"}},
	{Name: "Kabir Singh", IsGhost: false, DigitalFootprintScore: 45, ExposedTo: []string{"Alphabet Inc."}, ExposedByApps: []string{"Gmail"}},
	{Name: "Meera Pillai", IsGhost: true, DigitalFootprintScore: 22, ExposedTo: []string{"Meta Platforms", "True Software Scandinavia AB"}, ExposedByApps: []string{"WhatsApp", "Truecaller"}},
}
