package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/repository"
)

// Burnout thresholds over the 7-day check-in window. The high branch
// is checked first; the conditions overlap.
const (
	burnoutMinEntries     = 3
	burnoutHighStress     = 7.0
	burnoutHighSleep      = 6.0
	burnoutHighQuality    = 5.0
	burnoutModerateStress = 6.0
	burnoutModerateSleep  = 6.5
)

// healthService implements HealthService
type healthService struct {
	repo repository.HealthRepository
}

// NewHealthService creates a new health check-in service
func NewHealthService(repo repository.HealthRepository) HealthService {
	return &healthService{repo: repo}
}

// LogCheckIn records a new wellness check-in
func (s *healthService) LogCheckIn(ctx context.Context, req *models.CreateHealthCheckInRequest) (*models.HealthCheckIn, error) {
	checkIn := &models.HealthCheckIn{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		StressLevel:  req.StressLevel,
		Mood:         req.Mood,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("failed to create health check-in: %w", err)
	}

	return checkIn, nil
}

// GetRecent returns the check-ins from the last N days in record order
func (s *healthService) GetRecent(ctx context.Context, days int) ([]models.HealthCheckIn, error) {
	return s.repo.GetRecent(ctx, days)
}

// GetMetrics returns the rolling 7-day health summary
func (s *healthService) GetMetrics(ctx context.Context) (*models.HealthMetrics, error) {
	window, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent check-ins: %w", err)
	}

	today, err := s.repo.GetToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's check-ins: %w", err)
	}

	metrics := computeHealthMetrics(window, today)
	return &metrics, nil
}

// DetectBurnout checks the 7-day window for burnout risk
func (s *healthService) DetectBurnout(ctx context.Context) (*models.BurnoutFinding, error) {
	window, err := s.repo.GetRecent(ctx, WeekWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent check-ins: %w", err)
	}

	return detectBurnout(window), nil
}

// detectBurnout evaluates the two-tier burnout cascade. The high tier
// wins when both match; fewer than three entries is not a signal.
func detectBurnout(window []models.HealthCheckIn) *models.BurnoutFinding {
	if len(window) < burnoutMinEntries {
		return nil
	}

	avgSleep := meanSleep(window)
	avgStress := meanStress(window)
	avgSleepQuality := meanSleepQuality(window)

	// High stress + poor sleep or poor quality = burnout risk
	if avgStress >= burnoutHighStress && (avgSleep < burnoutHighSleep || avgSleepQuality < burnoutHighQuality) {
		return &models.BurnoutFinding{
			Severity: models.SeverityHigh,
			Message: fmt.Sprintf(
				"Burnout risk detected! High stress (%.1f/10) with poor sleep (%.1fh, quality %.1f/10).",
				avgStress, avgSleep, avgSleepQuality),
			AvgStress:       avgStress,
			AvgSleep:        avgSleep,
			AvgSleepQuality: avgSleepQuality,
		}
	}

	// Moderate stress with poor sleep
	if avgStress >= burnoutModerateStress && avgSleep < burnoutModerateSleep {
		return &models.BurnoutFinding{
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf(
				"Your stress (%.1f/10) and sleep (%.1fh) patterns suggest you need more rest.",
				avgStress, avgSleep),
			AvgStress: avgStress,
			AvgSleep:  avgSleep,
		}
	}

	return nil
}
