package repository

import "errors"

// ErrNotFound is returned when a lookup, update, or delete targets a record
// that does not exist.
var ErrNotFound = errors.New("record not found")
