package schema

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a validation failure.
type ErrorKind int

const (
	// ErrShape indicates a structural problem: wrong type for a field,
	// a missing required key, or a value that is not a single character.
	ErrShape ErrorKind = iota
	// ErrRange indicates a correctly shaped value outside its permitted
	// bounds or not in its enumerated set.
	ErrRange
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrShape:
		return "Shape Error"
	case ErrRange:
		return "Range Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ValidationError is the single error type produced by Validate and
// DecodeMap. Message is the complete human-readable description; Field names
// the offending config field.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func newShapeError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    ErrShape,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func newRangeError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    ErrRange,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError checks if an error is a schema validation error,
// unwrapping as needed.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsShapeError checks if an error is a structural validation error.
func IsShapeError(err error) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind == ErrShape
	}
	return false
}

// IsRangeError checks if an error is a bounds or enumeration error.
func IsRangeError(err error) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind == ErrRange
	}
	return false
}
