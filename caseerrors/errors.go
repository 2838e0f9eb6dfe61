package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a converter received a non-string input.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError represents a converter receiving something other than a string.
// This covers nil and every non-string dynamic type; it is raised before any
// tokenization begins, so callers never receive partially processed output.
type InputError struct {
	// Value is the offending input (may be nil)
	Value any
	// Message describes why the input was rejected
	Message string
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %T)", e.Value)
	}
	return msg
}

// Unwrap returns nil as InputError has no underlying cause.
func (e *InputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInputError returns an InputError for a value that is not a string.
func NewInputError(value any) *InputError {
	return &InputError{
		Value:   value,
		Message: "not a string",
	}
}
