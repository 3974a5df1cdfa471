// Package errors provides structured error types for ffimg.
//
// Every failure that reaches the user carries a machine-readable code so the
// CLI and the pipeline can tell input problems apart from internal ones:
//
//   - INVALID_*: input validation failures (resolution, output format, path)
//   - EMPTY_SPEC, SPEC_FORMAT: problems with the field list itself
//   - FIELD_TOO_WIDE: informational, never aborts a run
//   - INTERNAL_ERROR: unexpected failures (encoding, drawing, IO)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidResolution, "invalid resolution %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidResolution) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSpecFormat, origErr, "category %d: field %d", ci, fi)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidResolution Code = "INVALID_RESOLUTION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Spec errors
	ErrCodeEmptySpec    Code = "EMPTY_SPEC"
	ErrCodeSpecFormat   Code = "SPEC_FORMAT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Layout conditions. FIELD_TOO_WIDE is reported, not returned.
	ErrCodeFieldTooWide Code = "FIELD_TOO_WIDE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}

// FieldTooWideError describes a field whose label alone needs more than the
// usable width. Layout keeps such a field on its own row instead of failing.
type FieldTooWideError struct {
	Field    string
	MinWidth float64
	Usable   float64
}

// Error implements the error interface.
func (e *FieldTooWideError) Error() string {
	return fmt.Sprintf("field %q needs %.1fpx, usable width is %.1fpx", e.Field, e.MinWidth, e.Usable)
}

// Code returns the error code for this error type.
func (e *FieldTooWideError) Code() Code {
	return ErrCodeFieldTooWide
}
