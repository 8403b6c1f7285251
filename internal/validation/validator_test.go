package validation

import (
	"testing"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsInRange(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		n        int
		expected bool
	}{
		{"Below min", 0, false},
		{"At min", 1, true},
		{"Middle", 3, true},
		{"At max", 5, true},
		{"Above max", 6, false},
		{"Negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsInRange(tt.n, 1, 5)
			if result != tt.expected {
				t.Errorf("IsInRange(%d, 1, 5) = %v, expected %v", tt.n, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsOneOf(t *testing.T) {
	validator := NewValidator()
	allowed := []string{"pending", "completed"}

	if !validator.IsOneOf("pending", allowed) {
		t.Errorf("IsOneOf(pending) should be true")
	}
	if validator.IsOneOf("Pending", allowed) {
		t.Errorf("IsOneOf is case-sensitive and should reject Pending")
	}
	if validator.IsOneOf("", allowed) {
		t.Errorf("IsOneOf should reject the empty string")
	}
}

func TestValidator_TrimAndNormalize(t *testing.T) {
	validator := NewValidator()

	if got := validator.TrimAndValidateString("  Write docs \t"); got != "Write docs" {
		t.Errorf("TrimAndValidateString = %q, expected %q", got, "Write docs")
	}
	if got := validator.NormalizeKeyword("  IN_Progress "); got != "in_progress" {
		t.Errorf("NormalizeKeyword = %q, expected %q", got, "in_progress")
	}
}
