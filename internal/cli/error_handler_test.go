package cli

import (
	"errors"
	"testing"

	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	fieldErrors := validation.NewValidationError()
	fieldErrors.AddRequiredError("title")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add task",
			err:       apperrors.NewValidationError("invalid input", nil),
			expected:  "failed to add task: invalid input",
		},
		{
			name:      "Validation error with field errors",
			operation: "add task",
			err:       apperrors.NewValidationError("invalid task", fieldErrors),
			expected:  "failed to add task: title is required",
		},
		{
			name:      "Not found error",
			operation: "complete task",
			err:       apperrors.NewNotFoundError("task", "123"),
			expected:  "failed to complete task: task not found: 123",
		},
		{
			name:      "Storage error",
			operation: "list tasks",
			err:       apperrors.NewStorageError("select", errors.New("disk I/O error")),
			expected:  "failed to list tasks: A storage error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleKeepsCause(t *testing.T) {
	eh := NewErrorHandler()
	original := apperrors.NewStorageError("insert", errors.New("disk full"))

	result := eh.Handle("add task", original)

	if !errors.Is(result, original) {
		t.Error("expected the handled error to wrap the original")
	}
	if !apperrors.ShouldLogError(result) {
		t.Error("expected storage errors to stay loggable after handling")
	}
}

func TestErrorHandler_HandleNil(t *testing.T) {
	eh := NewErrorHandler()

	if err := eh.Handle("anything", nil); err != nil {
		t.Errorf("Handle(nil) = %v, want nil", err)
	}
	if err := eh.HandleSimple(nil); err != nil {
		t.Errorf("HandleSimple(nil) = %v, want nil", err)
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Storage error",
			err:      apperrors.NewStorageError("insert", errors.New("locked")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsValidationError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "AppError validation",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: true,
		},
		{
			name: "Field error collection",
			err: &validation.ValidationError{
				Errors: []validation.FieldError{
					{Field: "title", Message: "invalid"},
				},
			},
			expected: true,
		},
		{
			name:     "Storage error",
			err:      apperrors.NewStorageError("insert", nil),
			expected: false,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.IsValidationError(tt.err)
			if result != tt.expected {
				t.Errorf("ErrorHandler.IsValidationError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	notFound := apperrors.NewNotFoundError("task", "9")
	storage := apperrors.NewStorageError("update", errors.New("locked"))

	if !eh.IsNotFoundError(notFound) || eh.IsNotFoundError(storage) {
		t.Error("IsNotFoundError misclassified")
	}
	if !eh.IsStorageError(storage) || eh.IsStorageError(notFound) {
		t.Error("IsStorageError misclassified")
	}
	if code := eh.GetErrorCode(notFound); code != "NOT_FOUND" {
		t.Errorf("GetErrorCode() = %s, want NOT_FOUND", code)
	}
	if code := eh.GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %s, want UNKNOWN_ERROR", code)
	}
}
