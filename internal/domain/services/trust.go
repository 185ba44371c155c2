package services

import (
	"math"

	"consent-theater/internal/domain/models"
)

// Trust score blend weights. High risk, ghost exposure, tracker density and
// dangerous-permission density each erode trust on their own scale; the
// floored sub-scores are blended and rounded to a 0-100 integer.
const (
	trustRiskWeight    = 0.3
	trustGhostWeight   = 0.2
	trustTrackerWeight = 0.3
	trustPermWeight    = 0.2
)

// ComputeTrust blends app risk and contact exposure into a single trust
// score with a letter grade. Pure; empty inputs are treated as a denominator
// of 1.
func ComputeTrust(apps []models.AppRecord, contacts []models.Contact) models.TrustReport {
	appCount := float64(len(apps))
	if appCount == 0 {
		appCount = 1
	}
	contactCount := float64(len(contacts))
	if contactCount == 0 {
		contactCount = 1
	}

	var riskSum, trackerSum, permSum float64
	for _, app := range apps {
		riskSum += float64(app.RiskScore)
		trackerSum += float64(app.TrackerCount)
		permSum += float64(app.DangerousPermissionCount)
	}
	ghosts := 0
	for _, c := range contacts {
		if c.IsGhost {
			ghosts++
		}
	}

	avgRisk := riskSum / appCount
	ghostRatio := float64(ghosts) / contactCount
	trackerDensity := trackerSum / appCount
	permDensity := permSum / appCount

	trustFromRisk := math.Max(0, 100-avgRisk)
	trustFromGhosts := math.Max(0, 100-ghostRatio*200)
	trustFromTrackers := math.Max(0, 100-trackerDensity*15)
	trustFromPerms := math.Max(0, 100-permDensity*10)

	score := int(math.Round(
		trustFromRisk*trustRiskWeight +
			trustFromGhosts*trustGhostWeight +
			trustFromTrackers*trustTrackerWeight +
			trustFromPerms*trustPermWeight,
	))

	grade, label := trustGrade(score)

	return models.TrustReport{
		Score:             score,
		Grade:             grade,
		GradeLabel:        label,
		TrustFromRisk:     trustFromRisk,
		TrustFromGhosts:   trustFromGhosts,
		TrustFromTrackers: trustFromTrackers,
		TrustFromPerms:    trustFromPerms,
	}
}

func trustGrade(score int) (string, string) {
	switch {
	case score >= 80:
		return "A", "Excellent"
	case score >= 60:
		return "B", "Good"
	case score >= 40:
		return "C", "Concerning"
	case score >= 20:
		return "D", "Poor"
	default:
		return "F", "Critical"
	}
}
