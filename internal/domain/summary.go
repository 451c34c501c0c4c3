package domain

// StatusCounts splits a group of tasks by completion.
type StatusCounts struct {
	Done    int `json:"done" yaml:"done"`
	NotDone int `json:"not_done" yaml:"not_done"`
}

// Total returns Done + NotDone.
func (c StatusCounts) Total() int {
	return c.Done + c.NotDone
}

// Summary holds aggregate counts over the whole task set.
type Summary struct {
	Total      int                       `json:"total" yaml:"total"`
	Done       int                       `json:"done" yaml:"done"`
	NotDone    int                       `json:"not_done" yaml:"not_done"`
	Overdue    int                       `json:"overdue" yaml:"overdue"`
	ByPriority map[Priority]StatusCounts `json:"by_priority" yaml:"by_priority"`
}

// CompletionRate returns the fraction of tasks that are done, or 0 for an empty set.
func (s Summary) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Total)
}
