package service

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// StudyService defines the interface for study session business logic
type StudyService interface {
	LogSession(ctx context.Context, req *models.CreateStudySessionRequest) (*models.StudySession, error)
	GetRecent(ctx context.Context, days int) ([]models.StudySession, error)
	GetMetrics(ctx context.Context) (*models.StudyMetrics, error)
	DetectFocusIssues(ctx context.Context) (*models.FocusFinding, error)
}

// HealthService defines the interface for health check-in business logic
type HealthService interface {
	LogCheckIn(ctx context.Context, req *models.CreateHealthCheckInRequest) (*models.HealthCheckIn, error)
	GetRecent(ctx context.Context, days int) ([]models.HealthCheckIn, error)
	GetMetrics(ctx context.Context) (*models.HealthMetrics, error)
	DetectBurnout(ctx context.Context) (*models.BurnoutFinding, error)
}

// FinanceService defines the interface for expense business logic
type FinanceService interface {
	LogExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error)
	GetRecent(ctx context.Context, days int) ([]models.Expense, error)
	GetMetrics(ctx context.Context) (*models.FinanceMetrics, error)
	DetectOverspending(ctx context.Context) (*models.OverspendFinding, error)
}

// IntelligenceService defines the interface for cross-domain analysis.
// RunAnalysis evaluates the full detector battery over a snapshot of
// the three record series and returns the resulting insights; callers
// own the result.
type IntelligenceService interface {
	RunAnalysis(ctx context.Context) ([]models.Insight, error)
}

// ChatService defines the interface for the conversational mentor
type ChatService interface {
	Respond(ctx context.Context, message string) (*models.ChatMessage, error)
	History(ctx context.Context, limit int) ([]models.ChatMessage, error)
}
