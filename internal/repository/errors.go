package repository

import "errors"

// ErrNotFound is returned when a lookup, update, or delete matches no row.
// Callers test with errors.Is; repositories wrap it with the entity name for
// context.
var ErrNotFound = errors.New("not found")
