package domain

import "time"

// Sensor represents a single home-sensor record.
type Sensor struct {
	ID    int64
	Name  string
	Value float64
	Date  time.Time
}
