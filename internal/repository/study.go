package repository

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// studyRepository implements StudyRepository over the embedded store
type studyRepository struct {
	store *Store
}

// NewStudyRepository creates a new study session repository
func NewStudyRepository(store *Store) StudyRepository {
	return &studyRepository{store: store}
}

func (r *studyRepository) Create(ctx context.Context, session *models.StudySession) error {
	return r.store.put(prefixStudy, session.ID, session.CreatedAt, session)
}

func (r *studyRepository) GetRecent(ctx context.Context, days int) ([]models.StudySession, error) {
	cutoff := windowCutoff(days)
	sessions := make([]models.StudySession, 0)
	err := scan(r.store, prefixStudy, func(s models.StudySession) {
		if !s.CreatedAt.Before(cutoff) {
			sessions = append(sessions, s)
		}
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *studyRepository) GetToday(ctx context.Context) ([]models.StudySession, error) {
	sessions := make([]models.StudySession, 0)
	err := scan(r.store, prefixStudy, func(s models.StudySession) {
		if sameDay(s.CreatedAt) {
			sessions = append(sessions, s)
		}
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
