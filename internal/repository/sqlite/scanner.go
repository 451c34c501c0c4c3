package sqlite

import (
	"database/sql"
)

// taskColumns is the column list every task query selects, in schema order.
const taskColumns = `id, title, detail, created_at, due_date, priority, tags, done`

// taskRow mirrors the tasks table for sqlx struct scanning
type taskRow struct {
	ID        int64          `db:"id"`
	Title     string         `db:"title"`
	Detail    sql.NullString `db:"detail"`
	CreatedAt string         `db:"created_at"`
	DueDate   sql.NullString `db:"due_date"`
	Priority  int            `db:"priority"`
	Tags      sql.NullString `db:"tags"`
	Done      bool           `db:"done"`
}

// ScanTask converts a scanned row into a Task, decoding the stored date strings
func ScanTask(row taskRow) (*Task, error) {
	createdAt, err := ParseTimeFromDB(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	dueDate, err := ParseDateFromDB(row.DueDate)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:        row.ID,
		Title:     row.Title,
		Detail:    row.Detail.String,
		CreatedAt: createdAt,
		DueDate:   dueDate,
		Priority:  row.Priority,
		Tags:      row.Tags.String,
		Done:      row.Done,
	}, nil
}
