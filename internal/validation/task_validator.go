package validation

import (
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()
	tv.checkTitle(validationError, title)
	return validationError.OrNil()
}

func (tv *TaskValidator) checkTitle(validationError *ValidationError, title string) {
	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return
	}

	maxLen := tv.validator.TitleMaxLength()
	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, 1, maxLen)
	}

	if !tv.validator.IsValidTitle(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}
}

// ValidateDueDate parses a YYYY-MM-DD due date. An empty string means no due date.
func (tv *TaskValidator) ValidateDueDate(s string) (*time.Time, error) {
	validationError := NewValidationError()
	due := tv.checkDueDate(validationError, s)
	if err := validationError.OrNil(); err != nil {
		return nil, err
	}
	return due, nil
}

func (tv *TaskValidator) checkDueDate(validationError *ValidationError, s string) *time.Time {
	due, err := domain.ParseDueDate(s)
	if err != nil {
		validationError.AddInvalidFormatError("due_date", s, domain.DateLayout)
		return nil
	}
	return due
}

// ValidatePriority parses a priority given as 1-3 or high, medium, low
func (tv *TaskValidator) ValidatePriority(s string) (domain.Priority, error) {
	validationError := NewValidationError()
	p := tv.checkPriority(validationError, s)
	if err := validationError.OrNil(); err != nil {
		return 0, err
	}
	return p, nil
}

func (tv *TaskValidator) checkPriority(validationError *ValidationError, s string) domain.Priority {
	p, err := domain.ParsePriority(s)
	if err != nil || !tv.validator.IsValidPriority(p) {
		validationError.AddInvalidValueError("priority", s, "must be 1-3 or high, medium, low")
		return 0
	}
	return p
}

// ValidateNewTask checks every user-supplied field of a new task and returns
// the cleaned task ready for insertion. All field problems are reported together.
func (tv *TaskValidator) ValidateNewTask(title, detail, dueDate, priority, tags string) (domain.Task, error) {
	validationError := NewValidationError()

	tv.checkTitle(validationError, title)
	due := tv.checkDueDate(validationError, dueDate)
	p := tv.checkPriority(validationError, priority)

	detail = tv.validator.TrimAndValidateString(detail)
	if !tv.validator.IsValidStringLength(detail, 0, MaxDetailLength) {
		validationError.AddInvalidLengthError("detail", detail, 0, MaxDetailLength)
	}

	tags = tv.validator.TrimAndValidateString(tags)
	if !tv.validator.IsValidStringLength(tags, 0, MaxTagsLength) {
		validationError.AddInvalidLengthError("tags", tags, 0, MaxTagsLength)
	}

	if err := validationError.OrNil(); err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(tv.validator.TrimAndValidateString(title))
	task.Detail = detail
	task.DueDate = due
	task.Priority = p
	task.Tags = tags
	return task, nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
