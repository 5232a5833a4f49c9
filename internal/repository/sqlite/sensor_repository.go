package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smarthome-api/internal/domain"
	"smarthome-api/internal/repository"
)

const createSensorsTable = `
CREATE TABLE IF NOT EXISTS sensors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	value REAL NOT NULL DEFAULT 0,
	date DATETIME NOT NULL
);
`

type SensorRepository struct {
	db *sql.DB
}

func NewSensorRepository(db *sql.DB) repository.SensorRepository {
	return &SensorRepository{db: db}
}

func (r *SensorRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSensorsTable); err != nil {
		return fmt.Errorf("create sensors table: %w", err)
	}
	return nil
}

func (r *SensorRepository) Create(ctx context.Context, sensor *domain.Sensor) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO sensors (name, value, date)
VALUES (?, ?, ?)`,
		sensor.Name,
		sensor.Value,
		sensor.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("insert sensor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sensor last insert id: %w", err)
	}
	sensor.ID = id
	return id, nil
}

func (r *SensorRepository) Get(ctx context.Context, id int64) (*domain.Sensor, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, value, date
FROM sensors
WHERE id = ?`,
		id,
	)
	return scanSensor(row)
}

func (r *SensorRepository) Update(ctx context.Context, id int64, name string, value float64) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE sensors
SET name = ?, value = ?
WHERE id = ?`,
		name,
		value,
		id,
	)
	if err != nil {
		return fmt.Errorf("update sensor: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sensor rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SensorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sensors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sensor: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sensor rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SensorRepository) List(ctx context.Context) ([]domain.Sensor, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, value, date
FROM sensors`)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	defer rows.Close()

	var sensors []domain.Sensor
	for rows.Next() {
		var sensor domain.Sensor
		if err := rows.Scan(&sensor.ID, &sensor.Name, &sensor.Value, &sensor.Date); err != nil {
			return nil, fmt.Errorf("scan sensor: %w", err)
		}
		sensors = append(sensors, sensor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sensors: %w", err)
	}
	return sensors, nil
}

func scanSensor(row interface {
	Scan(dest ...any) error
}) (*domain.Sensor, error) {
	var sensor domain.Sensor
	if err := row.Scan(
		&sensor.ID,
		&sensor.Name,
		&sensor.Value,
		&sensor.Date,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan sensor: %w", err)
	}
	return &sensor, nil
}
