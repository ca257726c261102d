package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(Options{InMemory: true})
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func studySessionAt(createdAt time.Time, subject string) *models.StudySession {
	return &models.StudySession{
		ID:            uuid.New().String(),
		CreatedAt:     createdAt,
		Subject:       subject,
		DurationHours: 2,
		FocusLevel:    7,
	}
}

func TestStudyRepositoryWindowAndOrder(t *testing.T) {
	store := newTestStore(t)
	repo := NewStudyRepository(store)
	ctx := context.Background()

	now := time.Now()
	old := studySessionAt(now.AddDate(0, 0, -10), "history")
	first := studySessionAt(now.Add(-48*time.Hour), "math")
	second := studySessionAt(now.Add(-24*time.Hour), "physics")
	third := studySessionAt(now.Add(-1*time.Hour), "chemistry")

	// Insert out of creation order; keys restore it
	for _, s := range []*models.StudySession{third, old, first, second} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	recent, err := repo.GetRecent(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 sessions in window, got %d", len(recent))
	}
	for i, want := range []string{"math", "physics", "chemistry"} {
		if recent[i].Subject != want {
			t.Errorf("position %d: expected %s, got %s", i, want, recent[i].Subject)
		}
	}
}

func TestStudyRepositoryGetToday(t *testing.T) {
	store := newTestStore(t)
	repo := NewStudyRepository(store)
	ctx := context.Background()

	now := time.Now()
	yesterday := studySessionAt(now.AddDate(0, 0, -1), "math")
	todaySession := studySessionAt(now, "physics")

	for _, s := range []*models.StudySession{yesterday, todaySession} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	today, err := repo.GetToday(ctx)
	if err != nil {
		t.Fatalf("GetToday failed: %v", err)
	}
	if len(today) != 1 || today[0].Subject != "physics" {
		t.Errorf("expected only today's session, got %+v", today)
	}
}

func TestExpenseRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewExpenseRepository(store)
	ctx := context.Background()

	created := &models.Expense{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().Add(-time.Hour),
		Amount:    decimal.RequireFromString("19.99"),
		Category:  models.CategoryEntertainment,
		Notes:     "cinema",
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	recent, err := repo.GetRecent(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(recent))
	}
	got := recent[0]
	if !got.Amount.Equal(created.Amount) {
		t.Errorf("expected amount %s, got %s", created.Amount, got.Amount)
	}
	if got.Category != models.CategoryEntertainment || got.Notes != "cinema" {
		t.Errorf("expense fields lost in round trip: %+v", got)
	}
}

func TestHealthRepositoryWindowFilter(t *testing.T) {
	store := newTestStore(t)
	repo := NewHealthRepository(store)
	ctx := context.Background()

	now := time.Now()
	inWindow := &models.HealthCheckIn{
		ID:           uuid.New().String(),
		CreatedAt:    now.Add(-2 * time.Hour),
		SleepHours:   7,
		SleepQuality: 7,
		StressLevel:  4,
		Mood:         models.MoodGood,
	}
	outOfWindow := &models.HealthCheckIn{
		ID:           uuid.New().String(),
		CreatedAt:    now.AddDate(0, 0, -9),
		SleepHours:   5,
		SleepQuality: 3,
		StressLevel:  9,
		Mood:         models.MoodStressed,
	}

	for _, c := range []*models.HealthCheckIn{outOfWindow, inWindow} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	recent, err := repo.GetRecent(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Mood != models.MoodGood {
		t.Errorf("expected only the in-window check-in, got %+v", recent)
	}
}

func TestChatRepositoryKeepsTail(t *testing.T) {
	store := newTestStore(t)
	repo := NewChatRepository(store)
	ctx := context.Background()

	now := time.Now()
	contents := []string{"one", "two", "three", "four", "five"}
	for i, content := range contents {
		msg := &models.ChatMessage{
			ID:        uuid.New().String(),
			CreatedAt: now.Add(time.Duration(i-5) * time.Minute),
			Role:      models.ChatRoleUser,
			Content:   content,
		}
		if err := repo.Append(ctx, msg); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	recent, err := repo.GetRecent(ctx, 2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(recent))
	}
	if recent[0].Content != "four" || recent[1].Content != "five" {
		t.Errorf("expected the newest two messages in order, got %+v", recent)
	}
}

func TestEmptyWindowsReturnEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sessions, err := NewStudyRepository(store).GetRecent(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty result, got %d", len(sessions))
	}

	messages, err := NewChatRepository(store).GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty history, got %d", len(messages))
	}
}
