package services

import (
	"math"

	"consent-theater/internal/domain/models"
	"consent-theater/internal/taxonomy"
)

const maxInterests = 8

// DemographicsEngine infers an advertiser-style profile from the installed
// app inventory: a signed age weight and gender-lean tally accumulated over
// the app->signal table, interests from permissions and tracker companies,
// and fixed bucket thresholds over the aggregates.
type DemographicsEngine struct {
	signals       map[string]taxonomy.AppSignal
	permInterests map[string]string
	commerce      []string
}

// NewDemographicsEngine creates an engine backed by the bundled tables.
func NewDemographicsEngine() *DemographicsEngine {
	return &DemographicsEngine{
		signals:       taxonomy.AppSignals,
		permInterests: taxonomy.PermissionInterests,
		commerce:      taxonomy.CommerceTrackerCompanies,
	}
}

// Infer computes the demographic profile. Pure; tolerates an empty app list
// (confidence 0).
func (e *DemographicsEngine) Infer(apps []models.AppRecord) models.DemographicProfile {
	ageWeight := 0
	maleSignals, femaleSignals := 0, 0
	incomeSignals := make([]string, 0)
	interests := make([]string, 0)
	seenInterests := make(map[string]bool)

	addInterest := func(interest string) {
		if !seenInterests[interest] {
			seenInterests[interest] = true
			interests = append(interests, interest)
		}
	}

	for _, app := range apps {
		if signal, ok := e.signals[app.PackageName]; ok {
			ageWeight += signal.AgeWeight
			switch signal.Gender {
			case "male-lean":
				maleSignals++
			case "female-lean":
				femaleSignals++
			}
			incomeSignals = append(incomeSignals, signal.Income)
			addInterest(signal.Interest)
		}

		for _, perm := range app.DangerousPermissions {
			if interest, ok := e.permInterests[perm]; ok {
				addInterest(interest)
			}
		}

		for _, tracker := range app.Trackers {
			for _, company := range e.commerce {
				if tracker.Company == company {
					addInterest("Mobile Commerce")
				}
			}
		}
	}

	if len(interests) > maxInterests {
		interests = interests[:maxInterests]
	}

	return models.DemographicProfile{
		InferredGender: inferGender(maleSignals, femaleSignals),
		AgeRange:       ageRangeFor(28 + ageWeight),
		IncomeLevel:    incomeBracketFor(incomeSignals),
		Interests:      interests,
		Location:       "India (inferred from app selection)",
		Confidence:     confidenceFor(len(apps)),
	}
}

func inferGender(maleSignals, femaleSignals int) string {
	switch {
	case maleSignals > femaleSignals+1:
		return "Likely Male"
	case femaleSignals > maleSignals+1:
		return "Likely Female"
	default:
		return "Undetermined"
	}
}

func ageRangeFor(adjustedAge int) string {
	switch {
	case adjustedAge < 20:
		return "16-22"
	case adjustedAge < 25:
		return "18-25"
	case adjustedAge < 30:
		return "22-30"
	case adjustedAge < 35:
		return "25-34"
	default:
		return "30-45"
	}
}

func incomeBracketFor(signals []string) string {
	weights := map[string]int{"low": 1, "low-medium": 2, "medium": 3, "medium-high": 4, "high": 5}

	sum := 0
	for _, s := range signals {
		w, ok := weights[s]
		if !ok {
			w = 3
		}
		sum += w
	}
	denominator := len(signals)
	if denominator == 0 {
		denominator = 1
	}
	avg := float64(sum) / float64(denominator)

	switch {
	case avg < 2:
		return "₹2-4 LPA"
	case avg < 3:
		return "₹4-8 LPA"
	case avg < 4:
		return "₹8-15 LPA"
	default:
		return "₹15-30 LPA"
	}
}

// confidenceFor scales linearly with catalog coverage, reaching full
// confidence at 20 recognized apps and capping at 95.
func confidenceFor(appCount int) int {
	confidence := int(math.Round(float64(appCount) / 20 * 100))
	return min(confidence, 95)
}
