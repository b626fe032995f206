// Package services holds the side-effect free logic that turns fetched rows
// into response payloads: averages, tag frequencies, severity alerts, rent
// heuristics and the landlord-contact visibility rules.
package services

import (
	"math"
	"sort"
	"time"

	"tenantguard-be/models"
)

const (
	// DefaultTopTags is the number of tags returned when TopTags gets n <= 0.
	DefaultTopTags = 3

	// AlertWindow is how far back RecentSevere looks from "now".
	AlertWindow = 30 * 24 * time.Hour

	// SevereThreshold is the minimum severity counted as a serious alert.
	SevereThreshold = 4

	maxAlertExamples = 5
)

// AverageOf returns the mean of the values present in rows, rounded to one
// decimal. value reports false for rows where the field is absent. A nil
// result means there was nothing to average.
func AverageOf[T any](rows []T, value func(T) (float64, bool)) *float64 {
	var sum float64
	var n int
	for _, r := range rows {
		v, ok := value(r)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := round1(sum / float64(n))
	return &avg
}

// TopTags counts every tag across rows and returns the n most frequent.
// Equal counts keep the order in which the tags were first seen.
func TopTags[T any](rows []T, tags func(T) []string, n int) []string {
	if n <= 0 {
		n = DefaultTopTags
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		for _, tag := range tags(r) {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		return []string{}
	}
	return order
}

// CountWhere counts the rows matching pred.
func CountWhere[T any](rows []T, pred func(T) bool) int {
	n := 0
	for _, r := range rows {
		if pred(r) {
			n++
		}
	}
	return n
}

// SevereAlerts is the banner payload for recent serious reports. Count is
// the number of all matching reports, not capped at the five examples.
type SevereAlerts struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// AlertWindowStart is the cutoff RecentSevere should use at time now.
func AlertWindowStart(now time.Time) time.Time {
	return now.Add(-AlertWindow)
}

// RecentSevere keeps unfixed reports with severity >= minSeverity created at
// or after since. Count covers every match; Examples holds up to five
// non-empty texts, newest first.
func RecentSevere(reports []models.Report, since time.Time, minSeverity int) SevereAlerts {
	var matches []models.Report
	for _, r := range reports {
		if r.Severity < minSeverity || r.Status == models.ReportFixed || r.CreatedAt.Before(since) {
			continue
		}
		matches = append(matches, r)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	examples := make([]string, 0, maxAlertExamples)
	for _, r := range matches {
		if len(examples) == maxAlertExamples {
			break
		}
		if r.Text != "" {
			examples = append(examples, r.Text)
		}
	}

	return SevereAlerts{Count: len(matches), Examples: examples}
}

// SummarizeRatings builds the per-property quality summary.
func SummarizeRatings(ratings []models.Rating) models.PropertySummary {
	return models.PropertySummary{
		OverallAvg:     AverageOf(ratings, func(r models.Rating) (float64, bool) { return float64(r.Overall), true }),
		MaintenanceAvg: AverageOf(ratings, optionalScore(func(r models.Rating) *int { return r.Maintenance })),
		NoiseAvg:       AverageOf(ratings, optionalScore(func(r models.Rating) *int { return r.Noise })),
		ResponseAvg:    AverageOf(ratings, optionalScore(func(r models.Rating) *int { return r.Response })),
		TopPros:        TopTags(ratings, func(r models.Rating) []string { return r.Pros }, DefaultTopTags),
		TopCons:        TopTags(ratings, func(r models.Rating) []string { return r.Cons }, DefaultTopTags),
		Count:          len(ratings),
	}
}

// OverallAverage is the one-decimal average of the overall scores, nil when
// there are no ratings.
func OverallAverage(ratings []models.Rating) *float64 {
	return AverageOf(ratings, func(r models.Rating) (float64, bool) { return float64(r.Overall), true })
}

// CompactSummary returns nil for unrated properties.
func CompactSummary(ratings []models.Rating) *models.RatingsSummary {
	avg := OverallAverage(ratings)
	if avg == nil {
		return nil
	}
	return &models.RatingsSummary{Avg: *avg, Count: len(ratings)}
}

func optionalScore(field func(models.Rating) *int) func(models.Rating) (float64, bool) {
	return func(r models.Rating) (float64, bool) {
		v := field(r)
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	}
}

// round1 rounds half away from zero on the scaled value, so 29/20 gives 1.5.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
