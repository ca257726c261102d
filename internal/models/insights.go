package models

import "github.com/shopspring/decimal"

// Severity represents the urgency of a finding, ordered low < medium < high
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the ordinal position of the severity for ranking
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Domain identifies which record series a piece of evidence came from
type Domain string

const (
	DomainEducation Domain = "Education"
	DomainHealth    Domain = "Health"
	DomainFinance   Domain = "Finance"
)

// Connection is a single piece of evidence backing an insight:
// the domain it came from and the metric value it names
type Connection struct {
	Domain Domain `json:"domain"`
	Metric string `json:"metric"`
}

// Insight represents a cross-domain finding produced by one analysis
// cycle. ID is stable per detection rule, not per instance; insights
// are never persisted and live only until the next cycle replaces them.
type Insight struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Severity        Severity     `json:"severity"`
	Icon            string       `json:"icon"`
	Description     string       `json:"description"`
	Connections     []Connection `json:"connections"`
	Recommendations []string     `json:"recommendations"`
}

// InsightSummary holds severity counts over one analysis result
type InsightSummary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// StudyMetrics is the rolling-window summary of study sessions
type StudyMetrics struct {
	TotalHours    float64 `json:"total_hours"`
	AvgFocus      float64 `json:"avg_focus"`
	TodayHours    float64 `json:"today_hours"`
	SessionsCount int     `json:"sessions_count"`
}

// HealthMetrics is the rolling-window summary of health check-ins
type HealthMetrics struct {
	AvgSleep        float64 `json:"avg_sleep"`
	AvgStress       float64 `json:"avg_stress"`
	AvgSleepQuality float64 `json:"avg_sleep_quality"`
	TodayMood       string  `json:"today_mood"`
}

// FinanceMetrics is the rolling-window summary of expenses
type FinanceMetrics struct {
	WeeklyTotal  decimal.Decimal `json:"weekly_total"`
	TodayTotal   decimal.Decimal `json:"today_total"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	AvgDaily     decimal.Decimal `json:"avg_daily"`
}

// BudgetLimits holds the spending thresholds the overspending and
// finance-stress detectors compare against. Owned by the host
// configuration; read-only to the engine.
type BudgetLimits struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
}

// BurnoutFinding is the result of the health-only burnout detector
type BurnoutFinding struct {
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
	AvgStress       float64  `json:"avg_stress"`
	AvgSleep        float64  `json:"avg_sleep"`
	AvgSleepQuality float64  `json:"avg_sleep_quality,omitempty"`
}

// FocusFinding is the result of the education-only focus-drop detector
type FocusFinding struct {
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	AvgFocus    float64  `json:"avg_focus"`
	RecentFocus float64  `json:"recent_focus"`
}

// BudgetPeriod identifies which budget tier an overspend finding refers to
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// OverspendFinding is the result of the finance-only overspending detector
type OverspendFinding struct {
	Severity Severity        `json:"severity"`
	Message  string          `json:"message"`
	Period   BudgetPeriod    `json:"period"`
	Amount   decimal.Decimal `json:"amount"`
	Limit    decimal.Decimal `json:"limit"`
}

// DashboardResponse aggregates everything the dashboard view needs
// in one round trip
type DashboardResponse struct {
	Study     StudyMetrics   `json:"study"`
	Health    HealthMetrics  `json:"health"`
	Finance   FinanceMetrics `json:"finance"`
	Summary   InsightSummary `json:"summary"`
	Highlight *Insight       `json:"highlight,omitempty"`
}
