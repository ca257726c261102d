package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
)

// Mock repositories backed by in-memory slices. Reads return the
// stored slice as-is; window filtering is the real repository's job.

type mockStudyRepo struct {
	sessions []models.StudySession
	today    []models.StudySession
	err      error
}

func (m *mockStudyRepo) Create(ctx context.Context, session *models.StudySession) error {
	if m.err != nil {
		return m.err
	}
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *mockStudyRepo) GetRecent(ctx context.Context, days int) ([]models.StudySession, error) {
	return m.sessions, m.err
}

func (m *mockStudyRepo) GetToday(ctx context.Context) ([]models.StudySession, error) {
	return m.today, m.err
}

type mockHealthRepo struct {
	checkIns []models.HealthCheckIn
	today    []models.HealthCheckIn
	err      error
}

func (m *mockHealthRepo) Create(ctx context.Context, checkIn *models.HealthCheckIn) error {
	if m.err != nil {
		return m.err
	}
	m.checkIns = append(m.checkIns, *checkIn)
	return nil
}

func (m *mockHealthRepo) GetRecent(ctx context.Context, days int) ([]models.HealthCheckIn, error) {
	return m.checkIns, m.err
}

func (m *mockHealthRepo) GetToday(ctx context.Context) ([]models.HealthCheckIn, error) {
	return m.today, m.err
}

type mockExpenseRepo struct {
	expenses []models.Expense
	today    []models.Expense
	err      error
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	if m.err != nil {
		return m.err
	}
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *mockExpenseRepo) GetRecent(ctx context.Context, days int) ([]models.Expense, error) {
	return m.expenses, m.err
}

func (m *mockExpenseRepo) GetToday(ctx context.Context) ([]models.Expense, error) {
	return m.today, m.err
}

type mockChatRepo struct {
	messages []models.ChatMessage
	err      error
}

func (m *mockChatRepo) Append(ctx context.Context, message *models.ChatMessage) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockChatRepo) GetRecent(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.messages) > limit {
		return m.messages[len(m.messages)-limit:], nil
	}
	return m.messages, nil
}

// Record builders

func session(hours float64, focus int) models.StudySession {
	return models.StudySession{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Subject:       "math",
		DurationHours: hours,
		FocusLevel:    focus,
	}
}

func sessions(n int, hours float64, focus int) []models.StudySession {
	out := make([]models.StudySession, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, session(hours, focus))
	}
	return out
}

func checkIn(sleep float64, quality, stress int, mood models.Mood) models.HealthCheckIn {
	return models.HealthCheckIn{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		SleepHours:   sleep,
		SleepQuality: quality,
		StressLevel:  stress,
		Mood:         mood,
	}
}

func checkIns(n int, sleep float64, quality, stress int, mood models.Mood) []models.HealthCheckIn {
	out := make([]models.HealthCheckIn, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, checkIn(sleep, quality, stress, mood))
	}
	return out
}

func expense(amount string, category models.ExpenseCategory) models.Expense {
	return models.Expense{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
	}
}

func testLimits() models.BudgetLimits {
	return models.BudgetLimits{
		Daily:   decimal.NewFromInt(50),
		Weekly:  decimal.NewFromInt(300),
		Monthly: decimal.NewFromInt(1000),
	}
}
