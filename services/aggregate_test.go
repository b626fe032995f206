package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenantguard-be/models"
)

func intPtr(v int) *int { return &v }

func TestAverageOf_EmptyReturnsNil(t *testing.T) {
	avg := AverageOf([]models.Rating{}, func(r models.Rating) (float64, bool) { return float64(r.Overall), true })
	assert.Nil(t, avg)

	avg = AverageOf[models.Rating](nil, func(r models.Rating) (float64, bool) { return 0, true })
	assert.Nil(t, avg)
}

func TestAverageOf_AllAbsentReturnsNil(t *testing.T) {
	ratings := []models.Rating{{Overall: 4}, {Overall: 2}}
	summary := SummarizeRatings(ratings)
	assert.Nil(t, summary.NoiseAvg)
	require.NotNil(t, summary.OverallAvg)
	assert.Equal(t, 3.0, *summary.OverallAvg)
}

func TestAverageOf_IgnoresMissingValues(t *testing.T) {
	ratings := []models.Rating{
		{Overall: 5, Maintenance: intPtr(4)},
		{Overall: 3},
		{Overall: 4, Maintenance: intPtr(2)},
	}
	summary := SummarizeRatings(ratings)

	require.NotNil(t, summary.MaintenanceAvg)
	assert.Equal(t, 3.0, *summary.MaintenanceAvg)
	assert.Equal(t, 3, summary.Count)
}

func TestAverageOf_RoundsToOneDecimal(t *testing.T) {
	ratings := []models.Rating{{Overall: 5}, {Overall: 4}, {Overall: 4}}
	avg := OverallAverage(ratings)
	require.NotNil(t, avg)
	assert.Equal(t, 4.3, *avg)
}

func TestAverageOf_HalfwayRoundsUp(t *testing.T) {
	rows := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		v := 1.0
		if i < 9 {
			v = 2
		}
		rows = append(rows, v)
	}

	avg := AverageOf(rows, func(v float64) (float64, bool) { return v, true })
	require.NotNil(t, avg)
	assert.Equal(t, 1.5, *avg)
	assert.Equal(t, 0.3, round1(0.25))
	assert.Equal(t, -0.3, round1(-0.25))
}

func TestTopTags_FrequencyThenFirstSeen(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"a"}}
	got := TopTags(rows, func(r []string) []string { return r }, 2)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestTopTags_TieKeepsFirstSeenOrder(t *testing.T) {
	rows := [][]string{{"quiet", "bright"}, {"bright", "cheap"}, {"quiet"}, {"cheap", "pets"}}
	got := TopTags(rows, func(r []string) []string { return r }, 0)
	assert.Equal(t, []string{"quiet", "bright", "cheap"}, got)
}

func TestTopTags_Empty(t *testing.T) {
	got := TopTags([][]string{}, func(r []string) []string { return r }, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCountWhere(t *testing.T) {
	reports := []models.Report{
		{Status: models.ReportOpen},
		{Status: models.ReportFixed},
		{Status: models.ReportOpen},
	}
	open := CountWhere(reports, func(r models.Report) bool { return r.Status == models.ReportOpen })
	assert.Equal(t, 2, open)
	assert.Equal(t, 0, CountWhere([]models.Report{}, func(models.Report) bool { return true }))
}

func TestRecentSevere(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	since := AlertWindowStart(now)

	reports := []models.Report{
		{Text: "old leak", Severity: 5, Status: models.ReportOpen, CreatedAt: now.AddDate(0, 0, -45)},
		{Text: "mold", Severity: 4, Status: models.ReportOpen, CreatedAt: now.AddDate(0, 0, -3)},
		{Text: "fixed heater", Severity: 5, Status: models.ReportFixed, CreatedAt: now.AddDate(0, 0, -1)},
		{Text: "minor scuff", Severity: 2, Status: models.ReportOpen, CreatedAt: now.AddDate(0, 0, -1)},
		{Text: "no heat", Severity: 5, Status: models.ReportNew, CreatedAt: now.AddDate(0, 0, -1)},
	}

	alerts := RecentSevere(reports, since, SevereThreshold)
	assert.Equal(t, 2, alerts.Count)
	assert.Equal(t, []string{"no heat", "mold"}, alerts.Examples)
}

func TestRecentSevere_CapsExamples(t *testing.T) {
	now := time.Now()
	var reports []models.Report
	for i := 0; i < 8; i++ {
		reports = append(reports, models.Report{
			Text:      string(rune('a' + i)),
			Severity:  5,
			Status:    models.ReportOpen,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	alerts := RecentSevere(reports, AlertWindowStart(now), SevereThreshold)
	assert.Equal(t, 8, alerts.Count)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, alerts.Examples)
}

func TestRecentSevere_Empty(t *testing.T) {
	alerts := RecentSevere(nil, time.Now(), SevereThreshold)
	assert.Equal(t, 0, alerts.Count)
	assert.NotNil(t, alerts.Examples)
}

func TestCompactSummary(t *testing.T) {
	assert.Nil(t, CompactSummary(nil))

	s := CompactSummary([]models.Rating{{Overall: 2}, {Overall: 5}})
	require.NotNil(t, s)
	assert.Equal(t, 3.5, s.Avg)
	assert.Equal(t, 2, s.Count)
}
