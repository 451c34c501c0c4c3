package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/domain"
)

// Columns is the header of a delimited export, in storage order.
var Columns = []string{"id", "title", "detail", "created_at", "due_date", "priority", "tags", "done"}

// DefaultDelimiter separates fields unless the caller chooses otherwise.
const DefaultDelimiter = ','

// WriteDelimited writes a header row and one record per task. Fields that
// contain the delimiter, quotes or newlines are quoted.
func WriteDelimited(w io.Writer, tasks []*domain.Task, delimiter rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Detail,
			task.CreatedAt.UTC().Format(time.RFC3339Nano),
			task.DueDateString(),
			strconv.Itoa(int(task.Priority)),
			task.Tags,
			strconv.FormatBool(task.Done),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write task %d: %w", task.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadDelimited parses the output of WriteDelimited. Columns are located by
// header name, so their order may differ; id and title are required.
// Line breaks inside quoted fields come back as "\n": a "\r\n" written by
// WriteDelimited reads as "\n", while a lone "\r" is kept.
func ReadDelimited(r io.Reader, delimiter rune) ([]*domain.Task, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("header is missing required column %q", required)
		}
	}

	tasks := make([]*domain.Task, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		task, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func parseRecord(record []string, index map[string]int) (*domain.Task, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", field("id"))
	}

	task := domain.NewTask(field("title"))
	task.ID = id
	task.Detail = field("detail")
	task.Tags = field("tags")

	if v := field("created_at"); v != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at %q", v)
		}
		task.CreatedAt = createdAt.UTC()
	}

	task.DueDate, err = domain.ParseDueDate(field("due_date"))
	if err != nil {
		return nil, fmt.Errorf("invalid due_date %q", field("due_date"))
	}

	task.Priority, err = domain.ParsePriority(field("priority"))
	if err != nil {
		return nil, err
	}

	if v := field("done"); v != "" {
		task.Done, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid done %q", v)
		}
	}

	return &task, nil
}
