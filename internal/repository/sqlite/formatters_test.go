package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC time",
			input:    time.Date(2024, 1, 15, 10, 30, 45, 123456789, time.UTC),
			expected: "2024-01-15T10:30:45.123456789Z",
		},
		{
			name:     "offset time is converted to UTC",
			input:    time.Date(2024, 1, 15, 12, 30, 45, 0, time.FixedZone("CEST", 2*60*60)),
			expected: "2024-01-15T10:30:45Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeForDB(tt.input))
		})
	}
}

func TestParseTimeFromDB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "RFC3339Nano",
			input:    "2024-01-15T10:30:45.123456789Z",
			expected: time.Date(2024, 1, 15, 10, 30, 45, 123456789, time.UTC),
		},
		{
			name:     "RFC3339 with offset",
			input:    "2024-01-15T12:30:45+02:00",
			expected: time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:     "naive ISO-8601",
			input:    "2024-01-15T10:30:45.5",
			expected: time.Date(2024, 1, 15, 10, 30, 45, 500000000, time.UTC),
		},
		{
			name:     "SQL style",
			input:    "2024-01-15 10:30:45",
			expected: time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "last tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeFromDB(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatTimeForDB_RoundTrip(t *testing.T) {
	original := time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC)
	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestFormatDatePtrForDB(t *testing.T) {
	assert.Nil(t, FormatDatePtrForDB(nil))

	d := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", FormatDatePtrForDB(&d))
}

func TestParseDateFromDB(t *testing.T) {
	got, err := ParseDateFromDB(sql.NullString{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateFromDB(sql.NullString{String: "  ", Valid: true})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateFromDB(sql.NullString{String: "2024-06-01", Valid: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-01", got.Format(dateLayout))

	got, err = ParseDateFromDB(sql.NullString{String: "2024-06-01T00:00:00Z", Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", got.Format(dateLayout))

	_, err = ParseDateFromDB(sql.NullString{String: "June 1st", Valid: true})
	assert.Error(t, err)
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, nullableString(""))
	assert.Equal(t, "x", nullableString("x"))
}
