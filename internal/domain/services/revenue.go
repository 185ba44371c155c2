package services

import (
	"math"
	"sort"

	"consent-theater/internal/domain/models"
	"consent-theater/internal/taxonomy"
)

// RevenueEstimator values the observed tracker companies against a fixed
// annual per-user revenue table, falling back to a default for companies it
// does not recognize.
type RevenueEstimator struct {
	arpuInr     map[string]int
	defaultArpu int
}

// NewRevenueEstimator creates an estimator backed by the bundled ARPU table.
func NewRevenueEstimator() *RevenueEstimator {
	return &RevenueEstimator{
		arpuInr:     taxonomy.CompanyARPUInr,
		defaultArpu: taxonomy.DefaultARPUInr,
	}
}

// Estimate computes the revenue breakdown over every distinct tracker
// company seen across all apps. Pure; an empty app list yields all zeros.
func (e *RevenueEstimator) Estimate(apps []models.AppRecord) models.RevenueBreakdown {
	type companyAgg struct {
		trackerCount int
		apps         []string
		seenApps     map[string]bool
	}

	order := make([]string, 0)
	byCompany := make(map[string]*companyAgg)

	for _, app := range apps {
		for _, tracker := range app.Trackers {
			company := tracker.Company
			if company == "" {
				company = "Unknown"
			}
			agg, ok := byCompany[company]
			if !ok {
				agg = &companyAgg{seenApps: make(map[string]bool)}
				byCompany[company] = agg
				order = append(order, company)
			}
			agg.trackerCount++
			if !agg.seenApps[app.AppName] {
				agg.seenApps[app.AppName] = true
				agg.apps = append(agg.apps, app.AppName)
			}
		}
	}

	perCompany := make([]models.CompanyRevenue, 0, len(order))
	for _, company := range order {
		annual, ok := e.arpuInr[company]
		if !ok {
			annual = e.defaultArpu
		}
		agg := byCompany[company]
		perCompany = append(perCompany, models.CompanyRevenue{
			Company:      company,
			AnnualInr:    annual,
			TrackerCount: agg.trackerCount,
			Apps:         agg.apps,
		})
	}
	sort.SliceStable(perCompany, func(i, j int) bool {
		return perCompany[i].AnnualInr > perCompany[j].AnnualInr
	})

	totalInr := 0
	for _, c := range perCompany {
		totalInr += c.AnnualInr
	}

	return models.RevenueBreakdown{
		TotalAnnualInr: totalInr,
		TotalAnnualUsd: int(math.Round(float64(totalInr) / taxonomy.InrPerUsd)),
		PerCompany:     perCompany,
		PerDay:         int(math.Round(float64(totalInr) / 365)),
		PerHour:        math.Round(float64(totalInr)/8760*100) / 100,
	}
}
