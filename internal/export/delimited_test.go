package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"task-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks(t *testing.T) []*domain.Task {
	t.Helper()
	due, err := domain.ParseDueDate("2024-07-01")
	require.NoError(t, err)

	return []*domain.Task{
		{
			ID:        1,
			Title:     "Plain",
			CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			Priority:  domain.PriorityHigh,
		},
		{
			ID:        2,
			Title:     `Quote "this", please`,
			Detail:    "multi\nline; with delimiter-like text",
			CreatedAt: time.Date(2024, 6, 2, 9, 30, 15, 123456000, time.UTC),
			DueDate:   due,
			Priority:  domain.PriorityLow,
			Tags:      "home,errand",
			Done:      true,
		},
	}
}

func assertSameTasks(t *testing.T, expected, actual []*domain.Task) {
	t.Helper()
	require.Len(t, actual, len(expected))

	byID := make(map[int64]*domain.Task, len(actual))
	for _, task := range actual {
		byID[task.ID] = task
	}

	for _, want := range expected {
		got, ok := byID[want.ID]
		require.True(t, ok, "task %d missing after round trip", want.ID)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Detail, got.Detail)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", want.CreatedAt, got.CreatedAt)
		assert.Equal(t, want.DueDateString(), got.DueDateString())
		assert.Equal(t, want.Priority, got.Priority)
		assert.Equal(t, want.Tags, got.Tags)
		assert.Equal(t, want.Done, got.Done)
	}
}

func TestWriteDelimited(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, sampleTasks(t)[:1], ','))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,title,detail,created_at,due_date,priority,tags,done", lines[0])
	assert.Equal(t, "1,Plain,,2024-06-01T08:00:00Z,,1,,false", lines[1])
}

func TestWriteDelimited_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, nil, ','))
	assert.Equal(t, strings.Join(Columns, ",")+"\n", buf.String())

	tasks, err := ReadDelimited(&buf, ',')
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestDelimited_RoundTrip(t *testing.T) {
	for _, delim := range []rune{',', ';', '\t', '|'} {
		t.Run(string(delim), func(t *testing.T) {
			expected := sampleTasks(t)

			var buf bytes.Buffer
			require.NoError(t, WriteDelimited(&buf, expected, delim))

			actual, err := ReadDelimited(&buf, delim)
			require.NoError(t, err)
			assertSameTasks(t, expected, actual)
		})
	}
}

func TestDelimited_LineBreaksInFields(t *testing.T) {
	task := domain.NewTask("multi-line")
	task.ID = 1
	task.Detail = "line1\r\nline2\nline3"
	task.Tags = "a\rb"

	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, []*domain.Task{&task}, ','))
	assert.Contains(t, buf.String(), "\"line1\r\nline2\nline3\"", "written bytes are unchanged")

	actual, err := ReadDelimited(&buf, ',')
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, "line1\nline2\nline3", actual[0].Detail, "CRLF inside a field reads back as LF")
	assert.Equal(t, "a\rb", actual[0].Tags, "a lone CR survives")
	assert.Equal(t, "multi-line", actual[0].Title)
}

func TestReadDelimited_ColumnOrderFromHeader(t *testing.T) {
	input := "done;title;id;priority\ntrue;Reordered;7;3\n"

	tasks, err := ReadDelimited(strings.NewReader(input), ';')
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	assert.Equal(t, int64(7), tasks[0].ID)
	assert.Equal(t, "Reordered", tasks[0].Title)
	assert.Equal(t, domain.PriorityLow, tasks[0].Priority)
	assert.True(t, tasks[0].Done)
	assert.Nil(t, tasks[0].DueDate)
}

func TestReadDelimited_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing id column", "title\nx\n"},
		{"bad id", "id,title\nabc,x\n"},
		{"bad created_at", "id,title,created_at\n1,x,yesterday\n"},
		{"bad due_date", "id,title,due_date\n1,x,07/01/2024\n"},
		{"bad priority", "id,title,priority\n1,x,9\n"},
		{"bad done", "id,title,done\n1,x,maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDelimited(strings.NewReader(tt.input), ',')
			assert.Error(t, err)
		})
	}
}
