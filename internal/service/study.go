package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/repository"
)

// Focus-drop thresholds: a drop fires when the 7-day average is still
// high but the last three sessions have slipped below it
const (
	focusDropMinEntries  = 3
	focusDropOverallMin  = 7.0
	focusDropRecentLimit = 6.0
)

// studyService implements StudyService
type studyService struct {
	repo repository.StudyRepository
}

// NewStudyService creates a new study session service
func NewStudyService(repo repository.StudyRepository) StudyService {
	return &studyService{repo: repo}
}

// LogSession records a new study session
func (s *studyService) LogSession(ctx context.Context, req *models.CreateStudySessionRequest) (*models.StudySession, error) {
	session := &models.StudySession{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Subject:       req.Subject,
		DurationHours: req.DurationHours,
		FocusLevel:    req.FocusLevel,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}

	return session, nil
}

// GetRecent returns the sessions from the last N days in record order
func (s *studyService) GetRecent(ctx context.Context, days int) ([]models.StudySession, error) {
	return s.repo.GetRecent(ctx, days)
}

// GetMetrics returns the rolling 7-day study summary
func (s *studyService) GetMetrics(ctx context.Context) (*models.StudyMetrics, error) {
	window, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %w", err)
	}

	today, err := s.repo.GetToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's sessions: %w", err)
	}

	metrics := computeStudyMetrics(window, today)
	return &metrics, nil
}

// DetectFocusIssues checks the 7-day window for a recent focus drop
func (s *studyService) DetectFocusIssues(ctx context.Context) (*models.FocusFinding, error) {
	window, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %w", err)
	}

	return detectFocusDrop(window), nil
}

// detectFocusDrop compares overall window focus against the last three
// sessions in record order. Fewer than three entries is not a signal.
func detectFocusDrop(window []models.StudySession) *models.FocusFinding {
	if len(window) < focusDropMinEntries {
		return nil
	}

	avgFocus := meanFocus(window)
	recentFocus := meanFocus(window[len(window)-3:])

	if avgFocus > focusDropOverallMin && recentFocus < focusDropRecentLimit {
		return &models.FocusFinding{
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf(
				"Your focus levels have dropped recently: %.1f/10 on average this week but %.1f/10 over your last 3 sessions.",
				avgFocus, recentFocus),
			AvgFocus:    avgFocus,
			RecentFocus: recentFocus,
		}
	}

	return nil
}
