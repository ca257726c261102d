package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
)

func TestDetectOverspendingMonthlyTier(t *testing.T) {
	// Monthly overage wins even when the weekly window is within budget
	today := []models.Expense{expense("10.00", models.CategoryFood)}
	week := []models.Expense{expense("200.00", models.CategoryFood)}
	month := []models.Expense{
		expense("600.00", models.CategoryEducation),
		expense("600.00", models.CategoryOther),
	}

	finding := detectOverspending(today, week, month, testLimits())
	if finding == nil {
		t.Fatal("expected an overspend finding")
	}
	if finding.Period != models.BudgetPeriodMonthly {
		t.Errorf("expected monthly period, got %s", finding.Period)
	}
	if finding.Severity != models.SeverityHigh {
		t.Errorf("expected high severity, got %s", finding.Severity)
	}
	if !strings.Contains(finding.Message, "$1200.00") || !strings.Contains(finding.Message, "$1000.00") {
		t.Errorf("message missing amounts: %q", finding.Message)
	}
}

func TestDetectOverspendingWeeklyTier(t *testing.T) {
	week := []models.Expense{expense("350.00", models.CategoryShopping)}

	finding := detectOverspending(nil, week, week, testLimits())
	if finding == nil {
		t.Fatal("expected an overspend finding")
	}
	if finding.Period != models.BudgetPeriodWeekly || finding.Severity != models.SeverityMedium {
		t.Errorf("expected medium weekly finding, got %+v", finding)
	}
}

func TestDetectOverspendingDailyTier(t *testing.T) {
	today := []models.Expense{expense("65.00", models.CategoryEntertainment)}

	finding := detectOverspending(today, today, today, testLimits())
	if finding == nil {
		t.Fatal("expected an overspend finding")
	}
	if finding.Period != models.BudgetPeriodDaily || finding.Severity != models.SeverityLow {
		t.Errorf("expected low daily finding, got %+v", finding)
	}
	if finding.Amount.StringFixed(2) != "65.00" {
		t.Errorf("expected amount 65.00, got %s", finding.Amount)
	}
}

func TestDetectOverspendingExactLimitDoesNotFire(t *testing.T) {
	today := []models.Expense{expense("50.00", models.CategoryFood)}

	if finding := detectOverspending(today, today, today, testLimits()); finding != nil {
		t.Errorf("spending equal to the limit should not fire, got %+v", finding)
	}
}

func TestDetectOverspendingWithinBudget(t *testing.T) {
	if finding := detectOverspending(nil, nil, nil, testLimits()); finding != nil {
		t.Errorf("expected no finding for empty windows, got %+v", finding)
	}
}

func TestLogExpenseRejectsNonPositiveAmount(t *testing.T) {
	svc := NewFinanceService(&mockExpenseRepo{}, testLimits())

	_, err := svc.LogExpense(context.Background(), &models.CreateExpenseRequest{
		Amount:   decimal.Zero,
		Category: models.CategoryFood,
		Notes:    "coffee",
	})
	if err == nil {
		t.Fatal("expected error for zero amount")
	}

	_, err = svc.LogExpense(context.Background(), &models.CreateExpenseRequest{
		Amount:   decimal.NewFromInt(-5),
		Category: models.CategoryFood,
		Notes:    "refund",
	})
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestLogExpense(t *testing.T) {
	repo := &mockExpenseRepo{}
	svc := NewFinanceService(repo, testLimits())

	created, err := svc.LogExpense(context.Background(), &models.CreateExpenseRequest{
		Amount:   decimal.RequireFromString("12.50"),
		Category: models.CategoryTransport,
		Notes:    "bus pass",
	})
	if err != nil {
		t.Fatalf("LogExpense failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Error("expected ID and CreatedAt to be set")
	}
	if len(repo.expenses) != 1 || repo.expenses[0].Amount.StringFixed(2) != "12.50" {
		t.Errorf("expense not stored correctly: %+v", repo.expenses)
	}
}

func TestGetFinanceMetrics(t *testing.T) {
	repo := &mockExpenseRepo{
		expenses: []models.Expense{
			expense("70.00", models.CategoryFood),
		},
		today: []models.Expense{
			expense("15.00", models.CategoryFood),
		},
	}
	svc := NewFinanceService(repo, testLimits())

	metrics, err := svc.GetMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	if metrics.WeeklyTotal.StringFixed(2) != "70.00" {
		t.Errorf("expected WeeklyTotal 70.00, got %s", metrics.WeeklyTotal)
	}
	if metrics.TodayTotal.StringFixed(2) != "15.00" {
		t.Errorf("expected TodayTotal 15.00, got %s", metrics.TodayTotal)
	}
	if metrics.AvgDaily.StringFixed(2) != "10.00" {
		t.Errorf("expected AvgDaily 10.00, got %s", metrics.AvgDaily)
	}
}
