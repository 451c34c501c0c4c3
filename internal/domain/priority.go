package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority is the ordinal urgency of a task; lower values are more urgent.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3

	DefaultPriority = PriorityMedium
)

// Priorities lists every valid priority, most urgent first.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority accepts 1|2|3, high|medium|low, or h|m|l (case-insensitive).
// An empty string yields DefaultPriority.
func ParsePriority(s string) (Priority, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	switch value {
	case "":
		return DefaultPriority, nil
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || !Priority(n).IsValid() {
		return 0, fmt.Errorf("unknown priority %q (use 1-3 or high, medium, low)", s)
	}
	return Priority(n), nil
}
