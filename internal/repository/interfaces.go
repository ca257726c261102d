package repository

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// StudyRepository defines the interface for study session data access.
// The series is append-only; windowed reads filter on the record's own
// CreatedAt timestamp and preserve insertion order.
type StudyRepository interface {
	Create(ctx context.Context, session *models.StudySession) error
	GetRecent(ctx context.Context, days int) ([]models.StudySession, error)
	GetToday(ctx context.Context) ([]models.StudySession, error)
}

// HealthRepository defines the interface for health check-in data access
type HealthRepository interface {
	Create(ctx context.Context, checkIn *models.HealthCheckIn) error
	GetRecent(ctx context.Context, days int) ([]models.HealthCheckIn, error)
	GetToday(ctx context.Context) ([]models.HealthCheckIn, error)
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetRecent(ctx context.Context, days int) ([]models.Expense, error)
	GetToday(ctx context.Context) ([]models.Expense, error)
}

// ChatRepository defines the interface for mentor chat history access
type ChatRepository interface {
	Append(ctx context.Context, message *models.ChatMessage) error
	GetRecent(ctx context.Context, limit int) ([]models.ChatMessage, error)
}
