package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

const (
	// MaxDetailLength bounds the free-form detail text.
	MaxDetailLength = 4000
	// MaxTagsLength bounds the raw tags string.
	MaxTagsLength = 255

	defaultTitleMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has between min and max characters
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks if a title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, 1, v.TitleMaxLength())
}

// IsValidTitle rejects control characters such as newlines and tabs
func (v *Validator) IsValidTitle(title string) bool {
	for _, r := range title {
		if unicode.IsControl(r) {
			return false
		}
	}
	return utf8.ValidString(title)
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidPriority checks if p is one of the defined priorities
func (v *Validator) IsValidPriority(p domain.Priority) bool {
	return p.IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMaxLength returns configured maximum title length or default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil && v.config.Validation.TitleMaxLength > 0 {
		return v.config.Validation.TitleMaxLength
	}
	return defaultTitleMaxLength
}
