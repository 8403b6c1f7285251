package validation

import (
	"strings"
)

// Priority bounds, inclusive.
const (
	MinPriority = 1
	MaxPriority = 5
)

// TaskValidator provides validation for Task-related input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName checks that name is non-empty once surrounding whitespace is removed
func (tv *TaskValidator) ValidateTaskName(name string) error {
	if !tv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_name")
		return validationError
	}
	return nil
}

// GetValidTaskName returns the trimmed task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}

// ValidatePriority checks that priority lies within [MinPriority, MaxPriority]
func (tv *TaskValidator) ValidatePriority(priority int) error {
	if !tv.validator.IsInRange(priority, MinPriority, MaxPriority) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("priority", priority, MinPriority, MaxPriority)
		return validationError
	}
	return nil
}

// NormalizeStatus trims and lowercases text and checks it against the allowed
// canonical values. The normalized form is returned on success.
func (tv *TaskValidator) NormalizeStatus(text string, allowed []string) (string, error) {
	normalized := tv.validator.NormalizeKeyword(text)
	if !tv.validator.IsOneOf(normalized, allowed) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", text, "must be one of "+strings.Join(allowed, ", "))
		return "", validationError
	}
	return normalized, nil
}
