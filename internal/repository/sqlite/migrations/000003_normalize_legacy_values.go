package migrations

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

func init() {
	RegisterGoMigration(3, "normalize_legacy_values", Up_000003_normalize_legacy_values, Down_000003_normalize_legacy_values)
}

// Up_000003_normalize_legacy_values adopts rows written by earlier trackers
// sharing the same tasks table:
// - created_at stored as naive ISO-8601 (UTC implied) becomes RFC3339 UTC
// - textual done values ('true', 'False', ...) become 0/1
// - empty due_date strings become NULL
func Up_000003_normalize_legacy_values(tx *sql.Tx) error {
	type entry struct {
		id        int64
		createdAt string
	}
	var entries []entry

	// Read all rows into memory first to avoid locking issues
	rows, err := tx.Query("SELECT id, created_at FROM tasks")
	if err != nil {
		return fmt.Errorf("failed to query tasks: %w", err)
	}
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.createdAt); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("error iterating tasks: %w", err)
	}
	rows.Close()

	stmt, err := tx.Prepare("UPDATE tasks SET created_at = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare created_at update statement: %w", err)
	}
	defer stmt.Close()

	updated, skipped := 0, 0
	for _, e := range entries {
		if isRFC3339(e.createdAt) {
			continue
		}
		normalized, err := normalizeTimestamp(e.createdAt)
		if err != nil {
			slog.Warn("could not parse created_at", "id", e.id, "value", e.createdAt, "error", err)
			skipped++
			continue
		}
		if _, err := stmt.Exec(normalized, e.id); err != nil {
			return fmt.Errorf("failed to update created_at for id %d: %w", e.id, err)
		}
		updated++
	}

	if _, err := tx.Exec(`UPDATE tasks SET done = 1 WHERE lower(CAST(done AS TEXT)) IN ('true', 't', 'yes')`); err != nil {
		return fmt.Errorf("failed to normalize done=true values: %w", err)
	}
	if _, err := tx.Exec(`UPDATE tasks SET done = 0 WHERE lower(CAST(done AS TEXT)) IN ('false', 'f', 'no', '')`); err != nil {
		return fmt.Errorf("failed to normalize done=false values: %w", err)
	}
	if _, err := tx.Exec(`UPDATE tasks SET due_date = NULL WHERE trim(due_date) = ''`); err != nil {
		return fmt.Errorf("failed to normalize empty due dates: %w", err)
	}

	slog.Debug("normalized legacy task values", "rows", len(entries), "created_at_updated", updated, "created_at_skipped", skipped)
	return nil
}

// Down_000003_normalize_legacy_values is a no-op: normalized values are
// readable by every version of the schema.
func Down_000003_normalize_legacy_values(tx *sql.Tx) error {
	return nil
}

// normalizeTimestamp converts naive or space-separated ISO-8601 timestamps,
// which are taken to be UTC, into RFC3339 with nanoseconds.
func normalizeTimestamp(value string) (string, error) {
	layouts := []string{
		"2006-01-02T15:04:05.999999999",       // isoformat() without offset
		"2006-01-02 15:04:05.999999999",       // SQL style without offset
		"2006-01-02 15:04:05.999999999-07:00", // SQL style with offset
		"2006-01-02",                          // date only
	}

	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(time.RFC3339Nano), nil
		}
	}
	return "", fmt.Errorf("could not parse timestamp format: %s", value)
}

// isRFC3339 checks if a string is already in RFC3339 format.
func isRFC3339(value string) bool {
	_, err := time.Parse(time.RFC3339Nano, value)
	return err == nil
}
