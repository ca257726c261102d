package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lifementor/backend/internal/models"
)

func TestDetectBurnoutHighTier(t *testing.T) {
	// High stress with poor sleep quality
	window := checkIns(4, 7, 4, 8, models.MoodStressed)

	finding := detectBurnout(window)
	if finding == nil {
		t.Fatal("expected a burnout finding")
	}
	if finding.Severity != models.SeverityHigh {
		t.Errorf("expected high severity, got %s", finding.Severity)
	}
	if !strings.Contains(finding.Message, "Burnout risk detected!") {
		t.Errorf("unexpected message: %q", finding.Message)
	}
	if finding.AvgSleepQuality != 4 {
		t.Errorf("expected AvgSleepQuality 4, got %v", finding.AvgSleepQuality)
	}
}

func TestDetectBurnoutHighTierWinsOverModerate(t *testing.T) {
	// Stress 7 with sleep 5 matches both tiers; the high tier is
	// checked first and wins
	window := checkIns(5, 5, 6, 7, models.MoodLow)

	finding := detectBurnout(window)
	if finding == nil {
		t.Fatal("expected a burnout finding")
	}
	if finding.Severity != models.SeverityHigh {
		t.Errorf("expected high tier to win, got %s", finding.Severity)
	}
}

func TestDetectBurnoutModerateTier(t *testing.T) {
	// Moderate stress with short sleep, but quality good enough to
	// stay out of the high tier
	window := checkIns(3, 6, 7, 6, models.MoodOkay)

	finding := detectBurnout(window)
	if finding == nil {
		t.Fatal("expected a burnout finding")
	}
	if finding.Severity != models.SeverityMedium {
		t.Errorf("expected medium severity, got %s", finding.Severity)
	}
	if finding.AvgSleepQuality != 0 {
		t.Errorf("moderate finding should not carry sleep quality, got %v", finding.AvgSleepQuality)
	}
}

func TestDetectBurnoutNoSignal(t *testing.T) {
	window := checkIns(5, 8, 8, 3, models.MoodGood)

	if finding := detectBurnout(window); finding != nil {
		t.Errorf("expected no finding for healthy window, got %+v", finding)
	}
}

func TestDetectBurnoutNeedsThreeEntries(t *testing.T) {
	// Extreme values, but below the minimum sample size
	window := checkIns(2, 3, 1, 10, models.MoodStressed)

	if finding := detectBurnout(window); finding != nil {
		t.Errorf("expected no finding below minimum entries, got %+v", finding)
	}
}

func TestDetectBurnoutService(t *testing.T) {
	repo := &mockHealthRepo{checkIns: checkIns(4, 5, 3, 9, models.MoodStressed)}
	svc := NewHealthService(repo)

	finding, err := svc.DetectBurnout(context.Background())
	if err != nil {
		t.Fatalf("DetectBurnout failed: %v", err)
	}
	if finding == nil || finding.Severity != models.SeverityHigh {
		t.Fatalf("expected high severity finding, got %+v", finding)
	}
	if finding.AvgStress != 9 || finding.AvgSleep != 5 {
		t.Errorf("unexpected averages: %+v", finding)
	}
}

func TestLogCheckIn(t *testing.T) {
	repo := &mockHealthRepo{}
	svc := NewHealthService(repo)

	created, err := svc.LogCheckIn(context.Background(), &models.CreateHealthCheckInRequest{
		SleepHours:   7.5,
		SleepQuality: 8,
		StressLevel:  3,
		Mood:         models.MoodGood,
	})
	if err != nil {
		t.Fatalf("LogCheckIn failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Error("expected ID and CreatedAt to be set")
	}
	if len(repo.checkIns) != 1 || repo.checkIns[0].Mood != models.MoodGood {
		t.Errorf("check-in not stored correctly: %+v", repo.checkIns)
	}
}
