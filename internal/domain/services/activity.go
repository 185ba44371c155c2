package services

import (
	"math"

	"consent-theater/internal/domain/models"
)

// Hours 00:00-06:59 count as the sleeping window.
const lastSleepingHour = 6

// SummarizeActivity aggregates the network log into the scoreboard totals
// and the 24-bucket hourly timeline. Pure; an empty log yields zeroed totals
// and 24 empty buckets.
func SummarizeActivity(log []models.NetworkLogEntry) models.ActivitySummary {
	summary := models.ActivitySummary{
		TotalConnections: len(log),
		Hourly:           make([]models.HourActivity, 24),
	}
	for h := range summary.Hourly {
		summary.Hourly[h].Hour = h
		summary.Hourly[h].IsSleeping = h <= lastSleepingHour
	}

	var totalBytes int64
	for _, entry := range log {
		totalBytes += entry.BytesTransferred
		if entry.IsTracker {
			summary.TrackerConnections++
		}
		if !entry.UserWasActive {
			summary.InactiveConnections++
		}
		if entry.HourOfDay >= 0 && entry.HourOfDay <= lastSleepingHour {
			summary.SleepingConnections++
		}
		if entry.HourOfDay >= 0 && entry.HourOfDay < 24 {
			bucket := &summary.Hourly[entry.HourOfDay]
			bucket.Connections++
			bucket.TotalBytes += entry.BytesTransferred
		}
	}
	summary.TotalDataKB = int64(math.Round(float64(totalBytes) / 1024))

	return summary
}
