package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// legacyTimestampLayouts are accepted when reading created_at values that were
// not written by this package, e.g. naive ISO-8601 strings holding UTC.
var legacyTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
}

// FormatTimeForDB formats a time.Time value as an RFC3339 UTC string with nanoseconds
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimeFromDB parses a stored created_at value
func ParseTimeFromDB(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range legacyTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatDatePtrForDB formats a *time.Time value as YYYY-MM-DD, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a stored due_date. NULL and empty strings mean no due date.
func ParseDateFromDB(s sql.NullString) (*time.Time, error) {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil, nil
	}
	value := s.String
	if len(value) > len(dateLayout) {
		// tolerate timestamps written into the date column
		value = value[:len(dateLayout)]
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("unrecognized date %q: %w", s.String, err)
	}
	return &d, nil
}

// nullableString stores empty optional text as NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
