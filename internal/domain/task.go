package domain

import (
	"fmt"
	"strings"
	"time"

	"todo-tracker/internal/errors"
)

// DefaultPriority is used when no priority is given.
const DefaultPriority = 3

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Task is a single unit of work. Status and priority are only changed
// through methods so the priority range and timestamp rules always hold.
type Task struct {
	name      string
	status    TaskStatus
	priority  int
	createdAt time.Time
	updatedAt time.Time
}

// NewTask creates a task stamped with the current time. The name is stored
// as given; emptiness is checked by the collection, not here.
func NewTask(name string, status TaskStatus, priority int) (*Task, error) {
	now := timeNow()
	return RestoreTask(name, status, priority, now, now)
}

// RestoreTask creates a task with explicit timestamps. A zero timestamp is
// replaced by the current time.
func RestoreTask(name string, status TaskStatus, priority int, createdAt, updatedAt time.Time) (*Task, error) {
	if !status.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %q", string(status)), nil).
			WithContext("status", string(status))
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}

	if createdAt.IsZero() || updatedAt.IsZero() {
		now := timeNow()
		if createdAt.IsZero() {
			createdAt = now
		}
		if updatedAt.IsZero() {
			updatedAt = now
		}
	}

	return &Task{
		name:      name,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validatePriority(priority int) error {
	if err := taskValidator.ValidatePriority(priority); err != nil {
		return errors.NewValidationError("invalid priority", err).WithContext("priority", priority)
	}
	return nil
}

// Name returns the task name.
func (t *Task) Name() string { return t.name }

// Status returns the current status.
func (t *Task) Status() TaskStatus { return t.status }

// Priority returns the priority, 1 (lowest) to 5 (highest).
func (t *Task) Priority() int { return t.priority }

// CreatedAt returns the construction time.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the time of the last status or priority change.
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// MarkCompleted sets the status to completed.
func (t *Task) MarkCompleted() bool { return t.updateStatus(StatusCompleted) }

// MarkPending sets the status to pending.
func (t *Task) MarkPending() bool { return t.updateStatus(StatusPending) }

// MarkInProgress sets the status to in_progress.
func (t *Task) MarkInProgress() bool { return t.updateStatus(StatusInProgress) }

// MarkCancelled sets the status to cancelled.
func (t *Task) MarkCancelled() bool { return t.updateStatus(StatusCancelled) }

// updateStatus changes the status and refreshes updatedAt. Setting the
// current status again leaves both untouched. Reports whether anything changed.
func (t *Task) updateStatus(status TaskStatus) bool {
	if t.status == status {
		return false
	}
	t.status = status
	t.updatedAt = timeNow()
	return true
}

// SetPriority changes the priority. updatedAt is refreshed on every
// successful call, including when the value is unchanged.
func (t *Task) SetPriority(priority int) error {
	if err := validatePriority(priority); err != nil {
		return err
	}
	t.priority = priority
	t.updatedAt = timeNow()
	return nil
}

// IsCompleted reports whether the task is completed.
func (t *Task) IsCompleted() bool {
	return t.status == StatusCompleted
}

// IsPending reports whether the task is pending.
func (t *Task) IsPending() bool {
	return t.status == StatusPending
}

// String renders the task as "[STATUS] name (Priority: p)".
func (t *Task) String() string {
	return fmt.Sprintf("[%s] %s (Priority: %d)", strings.ToUpper(string(t.status)), t.name, t.priority)
}

// GoString renders the task for %#v.
func (t *Task) GoString() string {
	return fmt.Sprintf("Task(name='%s', status=%s, priority=%d)", t.name, t.status, t.priority)
}
