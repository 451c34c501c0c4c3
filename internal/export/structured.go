package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"task-tracker/internal/domain"

	"gopkg.in/yaml.v3"
)

// Output formats understood by Write.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Record is the structured form of a task in JSON and YAML output.
type Record struct {
	ID           int64     `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Detail       string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	DueDate      string    `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Priority     int       `json:"priority" yaml:"priority"`
	PriorityName string    `json:"priority_name" yaml:"priority_name"`
	Tags         []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Done         bool      `json:"done" yaml:"done"`
}

// NewRecord converts a task for structured output.
func NewRecord(task *domain.Task) Record {
	return Record{
		ID:           task.ID,
		Title:        task.Title,
		Detail:       task.Detail,
		CreatedAt:    task.CreatedAt.UTC(),
		DueDate:      task.DueDateString(),
		Priority:     int(task.Priority),
		PriorityName: task.Priority.String(),
		Tags:         task.TagList(),
		Done:         task.Done,
	}
}

// NewRecords converts tasks for structured output, preserving order. The
// result is never nil so an empty list encodes as [].
func NewRecords(tasks []*domain.Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, NewRecord(task))
	}
	return records
}

// WriteJSON writes tasks as an indented JSON array.
func WriteJSON(w io.Writer, tasks []*domain.Task) error {
	return Write(w, FormatJSON, NewRecords(tasks))
}

// WriteYAML writes tasks as a YAML sequence.
func WriteYAML(w io.Writer, tasks []*domain.Task) error {
	return Write(w, FormatYAML, NewRecords(tasks))
}

// Write encodes any value in the given structured format.
func Write(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
