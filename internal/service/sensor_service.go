package service

import (
	"context"
	"errors"
	"time"

	"smarthome-api/internal/domain"
	"smarthome-api/internal/repository"
)

// ErrSensorNotFound indicates the referenced sensor id does not exist.
var ErrSensorNotFound = errors.New("sensor not found")

// SensorService coordinates sensor CRUD backed by the repository.
type SensorService interface {
	List(ctx context.Context) ([]domain.Sensor, error)
	Create(ctx context.Context, name string, value float64) (*domain.Sensor, error)
	Update(ctx context.Context, id int64, name string, value float64) error
	Delete(ctx context.Context, id int64) error
}

type sensorService struct {
	sensors repository.SensorRepository
}

func NewSensorService(sensors repository.SensorRepository) SensorService {
	return &sensorService{sensors: sensors}
}

func (s *sensorService) List(ctx context.Context) ([]domain.Sensor, error) {
	return s.sensors.List(ctx)
}

// Create persists a new sensor record. Any caller-supplied id or date is
// ignored; the date is stamped to the current server time and the id is
// assigned by storage.
func (s *sensorService) Create(ctx context.Context, name string, value float64) (*domain.Sensor, error) {
	sensor := &domain.Sensor{
		Name:  name,
		Value: value,
		Date:  time.Now().UTC(),
	}
	if _, err := s.sensors.Create(ctx, sensor); err != nil {
		return nil, err
	}
	return sensor, nil
}

func (s *sensorService) Update(ctx context.Context, id int64, name string, value float64) error {
	if err := s.sensors.Update(ctx, id, name, value); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSensorNotFound
		}
		return err
	}
	return nil
}

func (s *sensorService) Delete(ctx context.Context, id int64) error {
	if err := s.sensors.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSensorNotFound
		}
		return err
	}
	return nil
}
