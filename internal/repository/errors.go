package repository

import "errors"

// ErrNotFound is returned when no inquiry row matches the requested id.
// Callers distinguish it from transport or provider failures.
var ErrNotFound = errors.New("inquiry not found")
