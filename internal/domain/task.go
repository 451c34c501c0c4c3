package domain

import (
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date form used for due dates.
const DateLayout = "2006-01-02"

// Task represents a to-do record in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Title     string
	Detail    string
	CreatedAt time.Time
	DueDate   *time.Time // nil when the task has no due date
	Priority  Priority
	Tags      string
	Done      bool
}

// NewTask creates a new Task with the given title and default priority.
func NewTask(title string) Task {
	return Task{
		Title:    title,
		Priority: DefaultPriority,
	}
}

// IsValid checks if the task has a usable title and priority.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != "" && t.Priority.IsValid()
}

// HasDueDate reports whether a due date is set.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// DueDateString returns the due date as YYYY-MM-DD, or "" when absent.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

// IsOverdue reports whether an open task's due date lies before the day of now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Done || t.DueDate == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.DueDate.Before(today)
}

// TagList splits the free-form tags string on commas and whitespace.
func (t Task) TagList() []string {
	return strings.FieldsFunc(t.Tags, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// ParseDueDate parses a YYYY-MM-DD string. An empty string means no due date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
