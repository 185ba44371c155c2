package services

// Risk scoring weights and caps. The two sub-scores saturate independently
// before summing so neither dimension can push the total past 100 on its own.
const (
	dangerousPermWeight = 8
	dangerousPermCap    = 60
	trackerWeight       = 10
	trackerCap          = 40
)

// RiskScore computes the 0-100 risk score for an app from its dangerous
// permission count and tracker count. Pure and deterministic.
func RiskScore(dangerousCount, trackerCount int) int {
	dangerousScore := min(dangerousCount*dangerousPermWeight, dangerousPermCap)
	trackerScore := min(trackerCount*trackerWeight, trackerCap)
	return min(dangerousScore+trackerScore, 100)
}

// AppGrade maps a risk score to the per-app letter grade.
func AppGrade(score int) string {
	switch {
	case score <= 15:
		return "A"
	case score <= 30:
		return "B"
	case score <= 45:
		return "C"
	case score <= 65:
		return "D"
	default:
		return "F"
	}
}

// RiskLabel maps a risk score to the coarser label used by the summary
// views. The thresholds intentionally differ from AppGrade's; both scales
// are part of the published vocabulary.
func RiskLabel(score int) string {
	switch {
	case score <= 20:
		return "low"
	case score <= 40:
		return "moderate"
	case score <= 60:
		return "high"
	case score <= 80:
		return "severe"
	default:
		return "critical"
	}
}
