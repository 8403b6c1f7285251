package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "task_name", Message: "task_name is required"}}, "validation error for field 'task_name': task_name is required"},
		{"Multiple errors", []FieldError{
			{Field: "task_name", Message: "task_name is required"},
			{Field: "priority", Message: "priority must be between 1 and 5"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else {
				if result != tt.expectError {
					t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
				}
			}
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Errorf("new ValidationError should have no errors")
	}

	ve.AddRequiredError("task_name")
	if !ve.HasErrors() {
		t.Errorf("ValidationError should have errors after AddRequiredError")
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")
	ve.AddInvalidValueError("status", "done", "must be one of pending, completed")
	ve.AddInvalidRangeError("priority", 9, 1, 5)

	if len(ve.Errors) != 3 {
		t.Fatalf("Expected 3 errors, got %d", len(ve.Errors))
	}

	tests := []struct {
		index   int
		field   string
		errType ValidationErrorType
		message string
	}{
		{0, "task_name", ErrorTypeRequired, "task_name is required"},
		{1, "status", ErrorTypeInvalidValue, "status has invalid value: must be one of pending, completed"},
		{2, "priority", ErrorTypeInvalidRange, "priority must be between 1 and 5"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := ve.Errors[tt.index]
			if got.Field != tt.field || got.Type != tt.errType || got.Message != tt.message {
				t.Errorf("Errors[%d] = %+v, want field=%s type=%s message=%q", tt.index, got, tt.field, tt.errType, tt.message)
			}
		})
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	empty := NewValidationError()
	if msg := empty.GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("unexpected message for empty error: %q", msg)
	}

	single := NewValidationError()
	single.AddRequiredError("task_name")
	if msg := single.GetUserFriendlyMessage(); msg != "task_name is required" {
		t.Errorf("unexpected message for single error: %q", msg)
	}

	multi := NewValidationError()
	multi.AddRequiredError("task_name")
	multi.AddInvalidRangeError("priority", 7, 1, 5)
	msg := multi.GetUserFriendlyMessage()
	if !strings.HasPrefix(msg, "Multiple validation errors occurred:") || !strings.Contains(msg, "- priority must be between 1 and 5") {
		t.Errorf("unexpected message for multiple errors: %q", msg)
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	if !IsValidationError(ve) {
		t.Errorf("IsValidationError should be true for *ValidationError")
	}
	if !IsValidationError(fmt.Errorf("wrapped: %w", ve)) {
		t.Errorf("IsValidationError should see through wrapping")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Errorf("IsValidationError should be false for plain errors")
	}
}
