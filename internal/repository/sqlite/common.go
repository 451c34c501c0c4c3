package sqlite

import (
	"context"
	"database/sql"
	"errors"

	apperrors "task-tracker/internal/errors"
)

// Execer is the subset of *sqlx.Stmt used for writes.
type Execer interface {
	ExecContext(ctx context.Context, args ...interface{}) (sql.Result, error)
}

// Querier is the subset of *sqlx.Stmt used for reads.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, args ...interface{}) error
}

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, err error) error {
	return apperrors.NewStorageError(operation, err)
}

// HandleNoRowsError handles sql.ErrNoRows errors consistently
func HandleNoRowsError(err error, entityType string, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFoundError(entityType, id)
	}
	return err
}

// ValidateRowsAffected checks if a database operation affected at least one row
func ValidateRowsAffected(result sql.Result, entityType string, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleStorageError("get rows affected", err)
	}
	if rows == 0 {
		return apperrors.NewNotFoundError(entityType, id)
	}
	return nil
}

// ExecuteWithLastInsertID executes a statement and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, stmt Execer, operation string, args ...interface{}) (int64, error) {
	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, HandleStorageError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleStorageError("get last insert ID", err)
	}

	return id, nil
}

// ExecuteWithRowsAffected executes a statement and validates that rows were affected
func ExecuteWithRowsAffected(ctx context.Context, stmt Execer, operation string, entityType string, id string, args ...interface{}) error {
	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return HandleStorageError(operation, err)
	}

	return ValidateRowsAffected(result, entityType, id)
}

// Execute executes a statement and returns the number of rows it touched
func Execute(ctx context.Context, stmt Execer, operation string, args ...interface{}) (int64, error) {
	result, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, HandleStorageError(operation, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleStorageError("get rows affected", err)
	}
	return rows, nil
}

// QuerySingle executes a statement that returns a single row and converts it
func QuerySingle[R any, T any](ctx context.Context, stmt Querier, convert func(R) (*T, error), entityType string, id string, args ...interface{}) (*T, error) {
	var row R
	if err := stmt.GetContext(ctx, &row, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(entityType, id)
		}
		return nil, HandleStorageError("query "+entityType, err)
	}

	result, err := convert(row)
	if err != nil {
		return nil, HandleStorageError("decode "+entityType, err)
	}
	return result, nil
}

// QueryMultiple executes a statement that returns multiple rows and converts them.
// An empty result is a non-nil, zero-length slice.
func QueryMultiple[R any, T any](ctx context.Context, stmt Querier, convert func(R) (*T, error), entityType string, args ...interface{}) ([]*T, error) {
	var rows []R
	if err := stmt.SelectContext(ctx, &rows, args...); err != nil {
		return nil, HandleStorageError("query "+entityType, err)
	}

	results := make([]*T, 0, len(rows))
	for _, row := range rows {
		result, err := convert(row)
		if err != nil {
			return nil, HandleStorageError("decode "+entityType, err)
		}
		results = append(results, result)
	}

	return results, nil
}
