package service

import (
	"math"
	"testing"

	"github.com/lifementor/backend/internal/models"
)

func TestComputeStudyMetricsEmptyWindow(t *testing.T) {
	metrics := computeStudyMetrics(nil, nil)

	if metrics.TotalHours != 0 {
		t.Errorf("expected TotalHours 0, got %v", metrics.TotalHours)
	}
	if metrics.AvgFocus != 0 {
		t.Errorf("expected AvgFocus 0, got %v", metrics.AvgFocus)
	}
	if math.IsNaN(metrics.AvgFocus) {
		t.Error("AvgFocus must never be NaN")
	}
	if metrics.SessionsCount != 0 {
		t.Errorf("expected SessionsCount 0, got %v", metrics.SessionsCount)
	}
}

func TestComputeStudyMetrics(t *testing.T) {
	window := []models.StudySession{
		session(2, 8),
		session(3, 6),
		session(1, 7),
	}
	today := []models.StudySession{session(1.5, 9)}

	metrics := computeStudyMetrics(window, today)

	if metrics.TotalHours != 6 {
		t.Errorf("expected TotalHours 6, got %v", metrics.TotalHours)
	}
	if metrics.AvgFocus != 7 {
		t.Errorf("expected AvgFocus 7, got %v", metrics.AvgFocus)
	}
	if metrics.TodayHours != 1.5 {
		t.Errorf("expected TodayHours 1.5, got %v", metrics.TodayHours)
	}
	if metrics.SessionsCount != 3 {
		t.Errorf("expected SessionsCount 3, got %v", metrics.SessionsCount)
	}
}

func TestComputeHealthMetricsEmptyWindow(t *testing.T) {
	metrics := computeHealthMetrics(nil, nil)

	if metrics.AvgSleep != 0 || metrics.AvgStress != 0 || metrics.AvgSleepQuality != 0 {
		t.Errorf("expected zero averages, got %+v", metrics)
	}
	if metrics.TodayMood != "N/A" {
		t.Errorf("expected TodayMood N/A, got %q", metrics.TodayMood)
	}
}

func TestComputeHealthMetricsTodayMoodIsLastEntry(t *testing.T) {
	window := []models.HealthCheckIn{
		checkIn(7, 7, 4, models.MoodGood),
		checkIn(6, 6, 5, models.MoodOkay),
	}
	today := []models.HealthCheckIn{
		checkIn(6, 6, 5, models.MoodLow),
		checkIn(6, 6, 5, models.MoodGood),
	}

	metrics := computeHealthMetrics(window, today)

	if metrics.TodayMood != "good" {
		t.Errorf("expected last today entry's mood, got %q", metrics.TodayMood)
	}
	if metrics.AvgSleep != 6.5 {
		t.Errorf("expected AvgSleep 6.5, got %v", metrics.AvgSleep)
	}
}

func TestComputeFinanceMetricsEmptyWindow(t *testing.T) {
	metrics := computeFinanceMetrics(nil, nil, nil)

	if !metrics.WeeklyTotal.IsZero() || !metrics.TodayTotal.IsZero() || !metrics.MonthlyTotal.IsZero() {
		t.Errorf("expected zero totals, got %+v", metrics)
	}
	if !metrics.AvgDaily.IsZero() {
		t.Errorf("expected zero AvgDaily for empty weekly window, got %s", metrics.AvgDaily)
	}
}

func TestComputeFinanceMetricsAvgDaily(t *testing.T) {
	week := []models.Expense{
		expense("20.50", models.CategoryFood),
		expense("49.50", models.CategoryTransport),
	}
	today := []models.Expense{expense("10.00", models.CategoryFood)}
	month := append(week, expense("100.00", models.CategoryShopping))

	metrics := computeFinanceMetrics(week, today, month)

	if metrics.WeeklyTotal.String() != "70" {
		t.Errorf("expected WeeklyTotal 70, got %s", metrics.WeeklyTotal)
	}
	if metrics.TodayTotal.String() != "10" {
		t.Errorf("expected TodayTotal 10, got %s", metrics.TodayTotal)
	}
	if metrics.MonthlyTotal.String() != "170" {
		t.Errorf("expected MonthlyTotal 170, got %s", metrics.MonthlyTotal)
	}
	if metrics.AvgDaily.StringFixed(2) != "10.00" {
		t.Errorf("expected AvgDaily 10.00, got %s", metrics.AvgDaily.StringFixed(2))
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := formatCurrency(sumAmounts([]models.Expense{expense("350", models.CategoryFood)})); got != "$350.00" {
		t.Errorf("expected $350.00, got %s", got)
	}
}
