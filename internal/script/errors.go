package script

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading, validating and running scripts.
var (
	// ErrNoScript indicates the script file does not exist.
	ErrNoScript = errors.New("script file not found")
	// ErrMissingField indicates a field required by an operation is absent.
	ErrMissingField = errors.New("required field missing")
	// ErrUnknownKind indicates an operation kind that is not recognized.
	ErrUnknownKind = errors.New("unknown operation kind")
	// ErrOutOfBounds indicates an index or length outside the valid range at
	// the point the operation would run.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrLabelMismatch indicates append labels that do not pair up with values.
	ErrLabelMismatch = errors.New("labels do not match values")
	// ErrInvalidScript indicates Run was given a script that fails validation.
	ErrInvalidScript = errors.New("invalid script")
	// ErrExpectationFailed indicates an expect_* operation did not hold.
	ErrExpectationFailed = errors.New("expectation failed")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingField indicates a required field is absent.
	ValCatMissingField ValidationCategory = "missing_field"
	// ValCatUnknownKind indicates an unrecognized operation kind.
	ValCatUnknownKind ValidationCategory = "unknown_kind"
	// ValCatOutOfBounds indicates an index or length out of range.
	ValCatOutOfBounds ValidationCategory = "out_of_bounds"
	// ValCatLabelMismatch indicates append labels and values differ in length.
	ValCatLabelMismatch ValidationCategory = "label_mismatch"
)

// ValidationError records a validation problem with source context. Step is
// the 1-based operation number, or 0 for problems outside the op list.
type ValidationError struct {
	Category   ValidationCategory
	SourceFile string
	Step       int
	Kind       OpKind
	Field      string
	Err        error
}

// Error returns a human-readable string including source file and step.
func (e *ValidationError) Error() string {
	prefix := e.SourceFile
	if prefix == "" {
		prefix = "script"
	}
	if e.Step > 0 {
		return fmt.Sprintf("%s: step %d (%s): %v", prefix, e.Step, e.Kind, e.Err)
	}
	return prefix + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
