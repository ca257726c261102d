package repository

import (
	"context"

	"github.com/lifementor/backend/internal/models"
)

// healthRepository implements HealthRepository over the embedded store
type healthRepository struct {
	store *Store
}

// NewHealthRepository creates a new health check-in repository
func NewHealthRepository(store *Store) HealthRepository {
	return &healthRepository{store: store}
}

func (r *healthRepository) Create(ctx context.Context, checkIn *models.HealthCheckIn) error {
	return r.store.put(prefixHealth, checkIn.ID, checkIn.CreatedAt, checkIn)
}

func (r *healthRepository) GetRecent(ctx context.Context, days int) ([]models.HealthCheckIn, error) {
	cutoff := windowCutoff(days)
	checkIns := make([]models.HealthCheckIn, 0)
	err := scan(r.store, prefixHealth, func(c models.HealthCheckIn) {
		if !c.CreatedAt.Before(cutoff) {
			checkIns = append(checkIns, c)
		}
	})
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *healthRepository) GetToday(ctx context.Context) ([]models.HealthCheckIn, error) {
	checkIns := make([]models.HealthCheckIn, 0)
	err := scan(r.store, prefixHealth, func(c models.HealthCheckIn) {
		if sameDay(c.CreatedAt) {
			checkIns = append(checkIns, c)
		}
	})
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}
