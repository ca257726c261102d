package service

import (
	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
)

// Rolling window sizes in days
const (
	WeekWindowDays  = 7
	MonthWindowDays = 30
)

var sevenDays = decimal.NewFromInt(WeekWindowDays)

// computeStudyMetrics summarizes a study window plus today's sessions.
// Empty windows yield zero values, never NaN.
func computeStudyMetrics(window, today []models.StudySession) models.StudyMetrics {
	var totalHours, focusSum float64
	for _, s := range window {
		totalHours += s.DurationHours
		focusSum += float64(s.FocusLevel)
	}

	avgFocus := 0.0
	if len(window) > 0 {
		avgFocus = focusSum / float64(len(window))
	}

	var todayHours float64
	for _, s := range today {
		todayHours += s.DurationHours
	}

	return models.StudyMetrics{
		TotalHours:    totalHours,
		AvgFocus:      avgFocus,
		TodayHours:    todayHours,
		SessionsCount: len(window),
	}
}

// computeHealthMetrics summarizes a health window plus today's
// check-ins. TodayMood is the mood of the last today-entry in record
// order, or "N/A" when there is none.
func computeHealthMetrics(window, today []models.HealthCheckIn) models.HealthMetrics {
	metrics := models.HealthMetrics{
		AvgSleep:        meanSleep(window),
		AvgStress:       meanStress(window),
		AvgSleepQuality: meanSleepQuality(window),
		TodayMood:       "N/A",
	}

	if len(today) > 0 {
		metrics.TodayMood = string(today[len(today)-1].Mood)
	}

	return metrics
}

// computeFinanceMetrics summarizes the 7-day, today, and 30-day expense
// windows. AvgDaily is weekly total over seven days, zero when the
// weekly window is empty.
func computeFinanceMetrics(week, today, month []models.Expense) models.FinanceMetrics {
	weeklyTotal := sumAmounts(week)

	avgDaily := decimal.Zero
	if len(week) > 0 {
		avgDaily = weeklyTotal.Div(sevenDays)
	}

	return models.FinanceMetrics{
		WeeklyTotal:  weeklyTotal,
		TodayTotal:   sumAmounts(today),
		MonthlyTotal: sumAmounts(month),
		AvgDaily:     avgDaily,
	}
}

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// meanFocus averages focus levels; zero for an empty slice
func meanFocus(sessions []models.StudySession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += float64(s.FocusLevel)
	}
	return sum / float64(len(sessions))
}

// sumStudyHours totals session durations
func sumStudyHours(sessions []models.StudySession) float64 {
	var sum float64
	for _, s := range sessions {
		sum += s.DurationHours
	}
	return sum
}

// formatCurrency renders a money value with two decimal places
func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
