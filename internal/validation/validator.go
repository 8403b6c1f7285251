package validation

import (
	"slices"
	"strings"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsInRange checks if n lies in the closed range [min, max]
func (v *Validator) IsInRange(n, min, max int) bool {
	return n >= min && n <= max
}

// IsOneOf checks if s is exactly one of the allowed values
func (v *Validator) IsOneOf(s string, allowed []string) bool {
	return slices.Contains(allowed, s)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeKeyword trims whitespace and lowercases s
func (v *Validator) NormalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
