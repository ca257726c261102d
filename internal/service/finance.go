package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/repository"
)

// financeService implements FinanceService
type financeService struct {
	repo   repository.ExpenseRepository
	limits models.BudgetLimits
}

// NewFinanceService creates a new expense service with the configured
// budget limits
func NewFinanceService(repo repository.ExpenseRepository, limits models.BudgetLimits) FinanceService {
	return &financeService{repo: repo, limits: limits}
}

// LogExpense records a new expense
func (s *financeService) LogExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("expense amount must be positive, got %s", req.Amount)
	}

	expense := &models.Expense{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Amount:    req.Amount,
		Category:  req.Category,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// GetRecent returns the expenses from the last N days in record order
func (s *financeService) GetRecent(ctx context.Context, days int) ([]models.Expense, error) {
	return s.repo.GetRecent(ctx, days)
}

// GetMetrics returns the weekly/today/monthly spending summary
func (s *financeService) GetMetrics(ctx context.Context) (*models.FinanceMetrics, error) {
	week, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly expenses: %w", err)
	}

	today, err := s.repo.GetToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's expenses: %w", err)
	}

	month, err := s.repo.GetRecent(ctx, MonthWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly expenses: %w", err)
	}

	metrics := computeFinanceMetrics(week, today, month)
	return &metrics, nil
}

// DetectOverspending checks spending against the budget cascade
func (s *financeService) DetectOverspending(ctx context.Context) (*models.OverspendFinding, error) {
	today, err := s.repo.GetToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's expenses: %w", err)
	}

	week, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly expenses: %w", err)
	}

	month, err := s.repo.GetRecent(ctx, MonthWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly expenses: %w", err)
	}

	return detectOverspending(today, week, month, s.limits), nil
}

// detectOverspending evaluates the budget tiers as a priority cascade:
// monthly first, then weekly, then daily. Only the first matching tier
// fires.
func detectOverspending(today, week, month []models.Expense, limits models.BudgetLimits) *models.OverspendFinding {
	todayTotal := sumAmounts(today)
	weekTotal := sumAmounts(week)
	monthTotal := sumAmounts(month)

	if monthTotal.GreaterThan(limits.Monthly) {
		return &models.OverspendFinding{
			Severity: models.SeverityHigh,
			Message: fmt.Sprintf("Monthly spending (%s) exceeded your %s budget!",
				formatCurrency(monthTotal), formatCurrency(limits.Monthly)),
			Period: models.BudgetPeriodMonthly,
			Amount: monthTotal,
			Limit:  limits.Monthly,
		}
	}

	if weekTotal.GreaterThan(limits.Weekly) {
		return &models.OverspendFinding{
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf("Weekly spending (%s) exceeded your %s budget!",
				formatCurrency(weekTotal), formatCurrency(limits.Weekly)),
			Period: models.BudgetPeriodWeekly,
			Amount: weekTotal,
			Limit:  limits.Weekly,
		}
	}

	if todayTotal.GreaterThan(limits.Daily) {
		return &models.OverspendFinding{
			Severity: models.SeverityLow,
			Message: fmt.Sprintf("Today's spending (%s) exceeded your %s daily budget.",
				formatCurrency(todayTotal), formatCurrency(limits.Daily)),
			Period: models.BudgetPeriodDaily,
			Amount: todayTotal,
			Limit:  limits.Daily,
		}
	}

	return nil
}
