package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/repository"
)

const (
	// Rolling window for cross-domain analysis
	AnalysisWindowDays = 7

	// Minimum entries per domain for the three-way patterns
	MinEntriesForPattern = 3

	// Minimum entries per domain for burnout scoring and academic
	// pressure detection
	MinEntriesForScoring = 5

	// Cross-domain thresholds
	highStressThreshold  = 7.0
	lowFocusThreshold    = 6.0
	poorSleepThreshold   = 6.5
	poorQualityThreshold = 6.0
	lowStudyHours        = 10.0
	heavyStudyHours      = 25.0
	intenseStudyHours    = 30.0
	excessiveStudyHours  = 35.0
	pressureFocusCeiling = 7.0
	negativeMoodMinimum  = 2

	// Burnout score: weighted sum of five risk indicators, max 11
	burnoutScoreThreshold = 6
)

// entertainmentSpendLimit is the weekly discretionary-spend threshold
// for the stress-spending pattern
var entertainmentSpendLimit = decimal.NewFromInt(100)

// intelligenceService implements IntelligenceService. Each analysis
// cycle reads one snapshot of the three series and evaluates a fixed,
// ordered battery of detectors; the result replaces any previous one
// wholesale.
type intelligenceService struct {
	studyRepo   repository.StudyRepository
	healthRepo  repository.HealthRepository
	expenseRepo repository.ExpenseRepository
	limits      models.BudgetLimits
}

// NewIntelligenceService creates a new cross-domain analysis service
func NewIntelligenceService(
	studyRepo repository.StudyRepository,
	healthRepo repository.HealthRepository,
	expenseRepo repository.ExpenseRepository,
	limits models.BudgetLimits,
) IntelligenceService {
	return &intelligenceService{
		studyRepo:   studyRepo,
		healthRepo:  healthRepo,
		expenseRepo: expenseRepo,
		limits:      limits,
	}
}

// RunAnalysis evaluates all pattern detectors over a snapshot taken at
// invocation time. Detectors contribute independently and in a fixed
// order; a detector with insufficient data stays silent. A failed
// snapshot read fails the whole cycle.
func (s *intelligenceService) RunAnalysis(ctx context.Context) ([]models.Insight, error) {
	education, err := s.studyRepo.GetRecent(ctx, AnalysisWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to read study sessions: %w", err)
	}

	health, err := s.healthRepo.GetRecent(ctx, AnalysisWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to read health check-ins: %w", err)
	}

	finance, err := s.expenseRepo.GetRecent(ctx, AnalysisWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	insights := make([]models.Insight, 0)
	detected := []*models.Insight{
		detectFinanceStressConnection(finance, health, education, s.limits),
		detectSleepProductivityConnection(health, education),
		detectStressSpendingConnection(education, health, finance),
		detectBurnoutRisk(health, education),
		detectAcademicPressure(education, health),
	}
	for _, insight := range detected {
		if insight != nil {
			insights = append(insights, *insight)
		}
	}

	return insights, nil
}

// Summarize partitions an analysis result by severity
func Summarize(insights []models.Insight) models.InsightSummary {
	summary := models.InsightSummary{Total: len(insights)}
	for _, insight := range insights {
		switch insight.Severity {
		case models.SeverityHigh:
			summary.High++
		case models.SeverityMedium:
			summary.Medium++
		case models.SeverityLow:
			summary.Low++
		}
	}
	return summary
}

// FirstHighSeverity returns the first high-severity insight in
// detection order, or nil. Used to pick the dashboard highlight.
func FirstHighSeverity(insights []models.Insight) *models.Insight {
	for i := range insights {
		if insights[i].Severity == models.SeverityHigh {
			return &insights[i]
		}
	}
	return nil
}

// =============================================================================
// Pattern Detectors
// =============================================================================

// Pattern 1: high spending + high stress + low focus
func detectFinanceStressConnection(finance []models.Expense, health []models.HealthCheckIn, education []models.StudySession, limits models.BudgetLimits) *models.Insight {
	if len(finance) < MinEntriesForPattern || len(health) < MinEntriesForPattern || len(education) < MinEntriesForPattern {
		return nil
	}

	weeklySpending := sumAmounts(finance)
	avgStress := meanStress(health)
	avgFocus := meanFocus(education)

	if !weeklySpending.GreaterThan(limits.Weekly) || avgStress < highStressThreshold || avgFocus >= lowFocusThreshold {
		return nil
	}

	return &models.Insight{
		ID:       "finance-stress-focus",
		Title:    "Financial Stress Affecting Focus",
		Severity: models.SeverityHigh,
		Icon:     "💸",
		Description: fmt.Sprintf(
			"Your high spending this week (%s) is correlating with elevated stress levels (%.1f/10) and reduced study focus (%.1f/10). Financial worries may be impacting your academic performance.",
			formatCurrency(weeklySpending), avgStress, avgFocus),
		Connections: []models.Connection{
			{Domain: models.DomainFinance, Metric: fmt.Sprintf("%s spent", formatCurrency(weeklySpending))},
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Stress: %.1f/10", avgStress)},
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("Focus: %.1f/10", avgFocus)},
		},
		Recommendations: financeStressRecommendations,
	}
}

// Pattern 2: poor sleep + low study hours or low focus
func detectSleepProductivityConnection(health []models.HealthCheckIn, education []models.StudySession) *models.Insight {
	if len(health) < MinEntriesForPattern || len(education) < MinEntriesForPattern {
		return nil
	}

	avgSleep := meanSleep(health)
	avgSleepQuality := meanSleepQuality(health)
	totalStudyHours := sumStudyHours(education)
	avgFocus := meanFocus(education)

	poorSleep := avgSleep < poorSleepThreshold || avgSleepQuality < poorQualityThreshold
	lowOutput := totalStudyHours < lowStudyHours || avgFocus < lowFocusThreshold
	if !poorSleep || !lowOutput {
		return nil
	}

	return &models.Insight{
		ID:       "sleep-productivity",
		Title:    "Sleep Quality Impacting Productivity",
		Severity: models.SeverityMedium,
		Icon:     "😴",
		Description: fmt.Sprintf(
			"Your sleep patterns (%.1fh average, quality: %.1f/10) are affecting your study productivity. You've only studied %.1f hours this week with an average focus of %.1f/10.",
			avgSleep, avgSleepQuality, totalStudyHours, avgFocus),
		Connections: []models.Connection{
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Sleep: %.1fh", avgSleep)},
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Quality: %.1f/10", avgSleepQuality)},
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("Study: %.1fh", totalStudyHours)},
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("Focus: %.1f/10", avgFocus)},
		},
		Recommendations: sleepProductivityRecommendations,
	}
}

// Pattern 3: heavy study load + high stress + discretionary spending
func detectStressSpendingConnection(education []models.StudySession, health []models.HealthCheckIn, finance []models.Expense) *models.Insight {
	if len(education) < MinEntriesForPattern || len(health) < MinEntriesForPattern || len(finance) < MinEntriesForPattern {
		return nil
	}

	totalStudyHours := sumStudyHours(education)
	avgStress := meanStress(health)

	entertainmentSpending := decimal.Zero
	for _, e := range finance {
		if e.Category.IsDiscretionary() {
			entertainmentSpending = entertainmentSpending.Add(e.Amount)
		}
	}

	if totalStudyHours <= heavyStudyHours || avgStress < highStressThreshold || !entertainmentSpending.GreaterThan(entertainmentSpendLimit) {
		return nil
	}

	return &models.Insight{
		ID:       "stress-spending",
		Title:    "Stress-Induced Spending Pattern",
		Severity: models.SeverityMedium,
		Icon:     "🛍️",
		Description: fmt.Sprintf(
			"High academic workload (%.1fh study) combined with elevated stress (%.1f/10) is correlating with increased entertainment/shopping spending (%s). This suggests stress-relief spending.",
			totalStudyHours, avgStress, formatCurrency(entertainmentSpending)),
		Connections: []models.Connection{
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("%.1fh study", totalStudyHours)},
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Stress: %.1f/10", avgStress)},
			{Domain: models.DomainFinance, Metric: fmt.Sprintf("%s spent", formatCurrency(entertainmentSpending))},
		},
		Recommendations: stressSpendingRecommendations,
	}
}

// Pattern 4: composite burnout score over five weighted indicators
func detectBurnoutRisk(health []models.HealthCheckIn, education []models.StudySession) *models.Insight {
	if len(health) < MinEntriesForScoring || len(education) < MinEntriesForScoring {
		return nil
	}

	avgSleep := meanSleep(health)
	avgStress := meanStress(health)
	avgSleepQuality := meanSleepQuality(health)
	totalStudyHours := sumStudyHours(education)
	avgFocus := meanFocus(education)

	score := 0
	if avgSleep < 6 {
		score += 2
	}
	switch {
	case avgStress >= 8:
		score += 3
	case avgStress >= 7:
		score += 2
	}
	if avgSleepQuality < 5 {
		score += 2
	}
	if totalStudyHours > excessiveStudyHours {
		score += 2
	}
	if avgFocus < 5 {
		score += 2
	}

	if score < burnoutScoreThreshold {
		return nil
	}

	return &models.Insight{
		ID:       "burnout-risk",
		Title:    "⚠️ High Burnout Risk Detected",
		Severity: models.SeverityHigh,
		Icon:     "🔥",
		Description: fmt.Sprintf(
			"Multiple indicators suggest you're at high risk of burnout: insufficient sleep (%.1fh), high stress (%.1f/10), poor sleep quality (%.1f/10), and declining focus (%.1f/10). Immediate action recommended.",
			avgSleep, avgStress, avgSleepQuality, avgFocus),
		Connections: []models.Connection{
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Sleep: %.1fh", avgSleep)},
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Stress: %.1f/10", avgStress)},
			{Domain: models.DomainHealth, Metric: fmt.Sprintf("Quality: %.1f/10", avgSleepQuality)},
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("Focus: %.1f/10", avgFocus)},
		},
		Recommendations: burnoutRiskRecommendations,
	}
}

// Pattern 5: intensive study with declining focus and negative moods
func detectAcademicPressure(education []models.StudySession, health []models.HealthCheckIn) *models.Insight {
	if len(education) < MinEntriesForScoring || len(health) < MinEntriesForPattern {
		return nil
	}

	totalStudyHours := sumStudyHours(education)
	avgFocus := meanFocus(education)

	// Last three check-ins in record order, no re-sort
	recent := health[len(health)-3:]
	negativeMoods := 0
	for _, c := range recent {
		if c.Mood.IsNegative() {
			negativeMoods++
		}
	}

	if totalStudyHours <= intenseStudyHours || avgFocus >= pressureFocusCeiling || negativeMoods < negativeMoodMinimum {
		return nil
	}

	return &models.Insight{
		ID:       "academic-pressure",
		Title:    "Academic Pressure Building",
		Severity: models.SeverityMedium,
		Icon:     "📚",
		Description: fmt.Sprintf(
			"You've been studying intensively (%.1fh this week), but your focus is declining (%.1f/10) and your mood has been negative. This suggests diminishing returns from extended study.",
			totalStudyHours, avgFocus),
		Connections: []models.Connection{
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("%.1fh study", totalStudyHours)},
			{Domain: models.DomainEducation, Metric: fmt.Sprintf("Focus: %.1f/10", avgFocus)},
			{Domain: models.DomainHealth, Metric: "Mood: Recently negative"},
		},
		Recommendations: academicPressureRecommendations,
	}
}

// =============================================================================
// Helpers
// =============================================================================

func meanSleep(checkIns []models.HealthCheckIn) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	var sum float64
	for _, c := range checkIns {
		sum += c.SleepHours
	}
	return sum / float64(len(checkIns))
}

func meanStress(checkIns []models.HealthCheckIn) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	var sum float64
	for _, c := range checkIns {
		sum += float64(c.StressLevel)
	}
	return sum / float64(len(checkIns))
}

func meanSleepQuality(checkIns []models.HealthCheckIn) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	var sum float64
	for _, c := range checkIns {
		sum += float64(c.SleepQuality)
	}
	return sum / float64(len(checkIns))
}

// =============================================================================
// Recommendation Catalogues
// =============================================================================

var financeStressRecommendations = []string{
	"Review your budget and identify areas to cut back",
	"Practice stress-relief techniques like meditation or exercise",
	"Break study sessions into smaller, manageable chunks",
	"Consider talking to a financial advisor or counselor",
}

var sleepProductivityRecommendations = []string{
	"Establish a consistent sleep schedule (aim for 7-8 hours)",
	"Avoid screens 1 hour before bedtime",
	"Create a relaxing bedtime routine",
	"Study during your peak energy hours (usually morning)",
}

var stressSpendingRecommendations = []string{
	"Find free stress-relief activities (walking, yoga, music)",
	"Set a strict entertainment budget and stick to it",
	"Practice the 24-hour rule before non-essential purchases",
	"Join study groups for social support without spending",
}

var burnoutRiskRecommendations = []string{
	"Take a break day - rest is productive!",
	"Reduce study hours and focus on quality over quantity",
	"Prioritize 8 hours of sleep every night",
	"Talk to a counselor or trusted friend",
	"Practice daily stress management (meditation, exercise)",
}

var academicPressureRecommendations = []string{
	"Use the Pomodoro technique (25min study, 5min break)",
	"Take regular breaks to maintain focus",
	"Vary your study methods to stay engaged",
	"Reward yourself after completing study goals",
}
