package domain

import (
	"fmt"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// TaskStatus is the lifecycle state of a Task. Its value is the canonical
// lowercase text used for display and serialization.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusCompleted  TaskStatus = "completed"
	StatusInProgress TaskStatus = "in_progress"
	StatusCancelled  TaskStatus = "cancelled"
)

var allStatuses = []TaskStatus{StatusPending, StatusCompleted, StatusInProgress, StatusCancelled}

var taskValidator = validation.NewTaskValidator()

// AllStatuses returns every status in declaration order.
func AllStatuses() []TaskStatus {
	out := make([]TaskStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// String returns the canonical text.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the four declared statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusInProgress, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseTaskStatus parses text case-insensitively, ignoring surrounding
// whitespace. Unknown text is a validation error; it never falls back to a default.
func ParseTaskStatus(text string) (TaskStatus, error) {
	normalized, err := taskValidator.NormalizeStatus(text, statusNames())
	if err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("invalid status: %q", text), err).
			WithContext("status", text)
	}
	return TaskStatus(normalized), nil
}

func statusNames() []string {
	names := make([]string, len(allStatuses))
	for i, s := range allStatuses {
		names[i] = string(s)
	}
	return names
}

// StatusArg is a status supplied either as a TaskStatus value or as raw text.
// The zero value means "not given" and resolves to StatusPending.
type StatusArg struct {
	value TaskStatus
	text  string
	raw   bool
}

// StatusValue wraps an enum value.
func StatusValue(s TaskStatus) StatusArg {
	return StatusArg{value: s}
}

// StatusText wraps raw text to be parsed with ParseTaskStatus.
func StatusText(text string) StatusArg {
	return StatusArg{text: text, raw: true}
}

// IsZero reports whether no status was supplied.
func (a StatusArg) IsZero() bool {
	return !a.raw && a.value == ""
}

// Resolve converts the argument into a TaskStatus.
func (a StatusArg) Resolve() (TaskStatus, error) {
	switch {
	case a.raw:
		return ParseTaskStatus(a.text)
	case a.value == "":
		return StatusPending, nil
	case a.value.IsValid():
		return a.value, nil
	default:
		return ParseTaskStatus(string(a.value))
	}
}

// String returns the argument as given, for log output.
func (a StatusArg) String() string {
	if a.raw {
		return a.text
	}
	return string(a.value)
}
