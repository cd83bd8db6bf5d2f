package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// dateLayout is the storage format for calendar-date columns. Timestamps
// (created_at, updated_at) use RFC3339 instead.
const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s.String, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// requireRowAffected converts a zero-row UPDATE or DELETE into ErrNotFound
// so callers can tell a missing id apart from success.
func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

// nowUTC returns the current UTC time at second precision, the resolution
// RFC3339 timestamp columns round-trip through storage.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
