package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite/migrations"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, mostly useful for tests.
const MemoryPath = ":memory:"

// Repository defines the interface for task storage operations
type Repository interface {
	// Initialize brings the schema up to date. It is safe to call repeatedly.
	Initialize(ctx context.Context) error

	// Create operations
	Insert(ctx context.Context, task NewTask) (*Task, error)

	// Read operations
	Get(ctx context.Context, id int64) (*Task, error)
	ListAll(ctx context.Context) ([]*Task, error)

	// Update operations
	SetDone(ctx context.Context, id int64, done bool) error

	// Delete operations
	Delete(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithBusyTimeout sets how long a writer waits on a locked database file.
func WithBusyTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.busyTimeout = d
	}
}

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *SQLiteRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) {
		if now != nil {
			r.now = now
		}
	}
}

type statements struct {
	list    *sqlx.Stmt
	get     *sqlx.Stmt
	insert  *sqlx.Stmt
	setDone *sqlx.Stmt
	delete  *sqlx.Stmt
}

func (s *statements) close() {
	for _, stmt := range []*sqlx.Stmt{s.list, s.get, s.insert, s.setDone, s.delete} {
		if stmt != nil {
			stmt.Close()
		}
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db          *sqlx.DB
	stmts       *statements
	logger      *slog.Logger
	now         func() time.Time
	busyTimeout time.Duration
	path        string
}

// New opens the database at dbPath, runs pending migrations and prepares
// the task statements.
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	r := &SQLiteRepository{
		logger:      slog.New(slog.DiscardHandler),
		now:         time.Now,
		busyTimeout: 5 * time.Second,
		path:        dbPath,
	}
	for _, opt := range opts {
		opt(r)
	}

	db, err := sqlx.Open("sqlite", r.dsn())
	if err != nil {
		return nil, apperrors.NewStorageError("open database", err)
	}
	// One connection serialises writers and keeps a :memory: database alive
	// across calls.
	db.SetMaxOpenConns(1)
	r.db = db

	if err := r.Initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	r.logger.Debug("opened task database", "path", dbPath)
	return r, nil
}

func (r *SQLiteRepository) dsn() string {
	if r.path == MemoryPath || r.busyTimeout <= 0 {
		return r.path
	}
	sep := "?"
	if strings.Contains(r.path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", r.path, sep, r.busyTimeout.Milliseconds())
}

// Initialize runs pending migrations and (re)prepares statements. Existing
// rows are never touched except by the legacy normalisation migration.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := migrations.RunMigrations(ctx, r.db.DB); err != nil {
		return apperrors.NewStorageError("run migrations", err)
	}

	stmts, err := r.prepare(ctx)
	if err != nil {
		return err
	}
	if r.stmts != nil {
		r.stmts.close()
	}
	r.stmts = stmts
	return nil
}

func (r *SQLiteRepository) prepare(ctx context.Context) (*statements, error) {
	s := &statements{}
	queries := []struct {
		dest  **sqlx.Stmt
		query string
	}{
		{&s.list, `
	SELECT ` + taskColumns + `
	FROM tasks
	ORDER BY done ASC, priority ASC, due_date IS NULL ASC, due_date ASC, id ASC`},
		{&s.get, `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`},
		{&s.insert, `
	INSERT INTO tasks (title, detail, created_at, due_date, priority, tags, done)
	VALUES (?, ?, ?, ?, ?, ?, 0)`},
		{&s.setDone, `UPDATE tasks SET done = ? WHERE id = ?`},
		{&s.delete, `DELETE FROM tasks WHERE id = ?`},
	}

	for _, q := range queries {
		stmt, err := r.db.PreparexContext(ctx, q.query)
		if err != nil {
			s.close()
			return nil, apperrors.NewStorageError("prepare statement", err)
		}
		*q.dest = stmt
	}
	return s, nil
}

// Close releases prepared statements and the database handle
func (r *SQLiteRepository) Close() error {
	if r.stmts != nil {
		r.stmts.close()
		r.stmts = nil
	}
	return r.db.Close()
}

// Insert stores a new, not-done task and returns it as persisted.
func (r *SQLiteRepository) Insert(ctx context.Context, task NewTask) (*Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return nil, apperrors.NewValidationError("task title must not be empty", nil)
	}

	priority := task.Priority
	if priority == 0 {
		priority = DefaultPriority
	}
	if priority < minPriority || priority > maxPriority {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("task priority must be between %d and %d, got %d", minPriority, maxPriority, priority), nil)
	}

	id, err := ExecuteWithLastInsertID(ctx, r.stmts.insert, "insert task",
		task.Title,
		nullableString(task.Detail),
		FormatTimeForDB(r.now()),
		FormatDatePtrForDB(task.DueDate),
		priority,
		nullableString(task.Tags),
	)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("inserted task", "id", id, "priority", priority)
	return r.Get(ctx, id)
}

// Get retrieves a task by ID
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*Task, error) {
	return QuerySingle(ctx, r.stmts.get, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListAll retrieves every task: open before done, then by priority, then by
// due date with undated tasks last.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*Task, error) {
	return QueryMultiple(ctx, r.stmts.list, ScanTask, "tasks")
}

// SetDone marks a task done or not done
func (r *SQLiteRepository) SetDone(ctx context.Context, id int64, done bool) error {
	if err := ExecuteWithRowsAffected(ctx, r.stmts.setDone, "update task", "task", fmt.Sprintf("%d", id), done, id); err != nil {
		return err
	}
	r.logger.Debug("updated task status", "id", id, "done", done)
	return nil
}

// Delete removes a task. Deleting a missing task is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	n, err := Execute(ctx, r.stmts.delete, "delete task", id)
	if err != nil {
		return err
	}
	r.logger.Debug("deleted task", "id", id, "rows", n)
	return nil
}
