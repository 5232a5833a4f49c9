package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smarthome-api/internal/domain"
	"smarthome-api/internal/repository"
)

type fakeSensorRepo struct {
	sensors map[int64]domain.Sensor
	nextID  int64
}

func newFakeSensorRepo() *fakeSensorRepo {
	return &fakeSensorRepo{sensors: make(map[int64]domain.Sensor), nextID: 1}
}

func (f *fakeSensorRepo) Init(ctx context.Context) error { return nil }

func (f *fakeSensorRepo) Create(ctx context.Context, sensor *domain.Sensor) (int64, error) {
	sensor.ID = f.nextID
	f.nextID++
	f.sensors[sensor.ID] = *sensor
	return sensor.ID, nil
}

func (f *fakeSensorRepo) Get(ctx context.Context, id int64) (*domain.Sensor, error) {
	sensor, ok := f.sensors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sensor, nil
}

func (f *fakeSensorRepo) Update(ctx context.Context, id int64, name string, value float64) error {
	sensor, ok := f.sensors[id]
	if !ok {
		return repository.ErrNotFound
	}
	sensor.Name = name
	sensor.Value = value
	f.sensors[id] = sensor
	return nil
}

func (f *fakeSensorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.sensors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.sensors, id)
	return nil
}

func (f *fakeSensorRepo) List(ctx context.Context) ([]domain.Sensor, error) {
	var out []domain.Sensor
	for _, sensor := range f.sensors {
		out = append(out, sensor)
	}
	return out, nil
}

func TestCreate_StampsDateAndAssignsID(t *testing.T) {
	t.Parallel()

	svc := NewSensorService(newFakeSensorRepo())

	before := time.Now().UTC()
	sensor, err := svc.Create(context.Background(), "Living Room Temp", 21.5)
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if sensor.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if sensor.Date.Before(before) || sensor.Date.After(after) {
		t.Fatalf("date %v not stamped to server time (window %v..%v)", sensor.Date, before, after)
	}
}

func TestUpdate_OverwritesNameAndValueOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeSensorRepo()
	svc := NewSensorService(repo)

	created, err := svc.Create(context.Background(), "Living Room Temp", 21.5)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Update(context.Background(), created.ID, "Kitchen", 30.0); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := repo.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "Kitchen" || got.Value != 30.0 {
		t.Fatalf("update not applied: got %+v", got)
	}
	if got.ID != created.ID {
		t.Fatalf("id changed on update: %d -> %d", created.ID, got.ID)
	}
	if !got.Date.Equal(created.Date) {
		t.Fatalf("date changed on update: %v -> %v", created.Date, got.Date)
	}
}

func TestUpdate_MissingSensor(t *testing.T) {
	t.Parallel()

	svc := NewSensorService(newFakeSensorRepo())

	err := svc.Update(context.Background(), 9999, "Kitchen", 30.0)
	if !errors.Is(err, ErrSensorNotFound) {
		t.Fatalf("expected ErrSensorNotFound, got %v", err)
	}
}

func TestDelete_ThenDeleteAgain(t *testing.T) {
	t.Parallel()

	svc := NewSensorService(newFakeSensorRepo())

	created, err := svc.Create(context.Background(), "Hall", 19.0)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	sensors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(sensors) != 0 {
		t.Fatalf("expected empty list after delete, got %d entries", len(sensors))
	}

	err = svc.Delete(context.Background(), created.ID)
	if !errors.Is(err, ErrSensorNotFound) {
		t.Fatalf("expected ErrSensorNotFound on second delete, got %v", err)
	}
}
