package repository

import (
	"context"

	"smarthome-api/internal/domain"
)

// SensorRepository exposes persistence operations for Sensor records.
// Callers pass complete records; there is no change tracking.
type SensorRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, sensor *domain.Sensor) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Sensor, error)
	// Update overwrites name and value for the given id, leaving id and date
	// untouched. It reports ErrNotFound when no row matches.
	Update(ctx context.Context, id int64, name string, value float64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Sensor, error)
}
