package services

import "consent-theater/internal/domain/models"

// BuildContagionGraph builds the exposure graph: a central user node linked
// to every contact, with ghost contacts flagged and exposure severity
// derived from the digital footprint score. Pure; empty inputs yield a graph
// with just the user node.
func BuildContagionGraph(apps []models.AppRecord, contacts []models.Contact) models.ContagionGraph {
	nodes := make([]models.GraphNode, 0, len(contacts)+1)
	links := make([]models.GraphLink, 0, len(contacts))

	exposedTo := make([]string, 0)
	seenCompanies := make(map[string]bool)
	for _, app := range apps {
		for _, tracker := range app.Trackers {
			if !seenCompanies[tracker.Company] {
				seenCompanies[tracker.Company] = true
				exposedTo = append(exposedTo, tracker.Company)
			}
		}
	}

	nodes = append(nodes, models.GraphNode{
		ID:             "user",
		Name:           "You",
		Type:           "user",
		FootprintScore: 100,
		ExposedTo:      exposedTo,
		Severity:       exposureSeverity(100),
		Val:            12,
	})

	for _, contact := range contacts {
		nodeType := "contact"
		val := 7
		if contact.IsGhost {
			nodeType = "ghost"
			val = 5
		}

		id := "contact-" + contact.Name
		nodes = append(nodes, models.GraphNode{
			ID:             id,
			Name:           contact.Name,
			Type:           nodeType,
			FootprintScore: contact.DigitalFootprintScore,
			ExposedTo:      contact.ExposedTo,
			Severity:       exposureSeverity(contact.DigitalFootprintScore),
			Val:            val,
		})

		links = append(links, models.GraphLink{
			Source:     "user",
			Target:     id,
			SharedApps: contact.ExposedByApps,
		})
	}

	return models.ContagionGraph{Nodes: nodes, Links: links}
}

func exposureSeverity(footprintScore int) string {
	switch {
	case footprintScore > 70:
		return "critical"
	case footprintScore > 40:
		return "elevated"
	default:
		return "low"
	}
}
