package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

func TestTaskStatus_Values(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "completed", StatusCompleted.String())
	assert.Equal(t, "in_progress", StatusInProgress.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, []TaskStatus{StatusPending, StatusCompleted, StatusInProgress, StatusCancelled}, AllStatuses())
}

func TestAllStatuses_ReturnsCopy(t *testing.T) {
	statuses := AllStatuses()
	statuses[0] = TaskStatus("mutated")
	assert.Equal(t, StatusPending, AllStatuses()[0])
}

func TestTaskStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("Pending").IsValid())
	assert.False(t, TaskStatus("done").IsValid())
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected TaskStatus
	}{
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{"Completed", StatusCompleted},
		{"in_progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"In_Progress", StatusInProgress},
		{"cAnCeLlEd", StatusCancelled},
		{"  completed  ", StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTaskStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "done", "in progress", "inprogress", "canceled", "pending!"} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseTaskStatus(input)
			require.Error(t, err)
			assert.Equal(t, TaskStatus(""), got)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			assert.True(t, validation.IsValidationError(err), "field errors travel as the cause")
		})
	}
}

func TestStatusArg_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		arg         StatusArg
		expected    TaskStatus
		expectError bool
	}{
		{"zero value defaults to pending", StatusArg{}, StatusPending, false},
		{"enum value", StatusValue(StatusInProgress), StatusInProgress, false},
		{"raw text", StatusText("COMPLETED"), StatusCompleted, false},
		{"raw text padded", StatusText(" cancelled "), StatusCancelled, false},
		{"bad raw text", StatusText("finished"), "", true},
		{"empty raw text is not a default", StatusText(""), "", true},
		{"undeclared enum value", StatusValue(TaskStatus("archived")), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.arg.Resolve()
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStatusArg_IsZeroAndString(t *testing.T) {
	assert.True(t, StatusArg{}.IsZero())
	assert.False(t, StatusValue(StatusPending).IsZero())
	assert.False(t, StatusText("").IsZero())

	assert.Equal(t, "Completed", StatusText("Completed").String())
	assert.Equal(t, "in_progress", StatusValue(StatusInProgress).String())
}
