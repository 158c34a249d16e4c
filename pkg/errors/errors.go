// Package errors provides structured error types for the surveyfig application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the figure pipeline
//   - Machine-readable error codes so automated callers (e.g. a build
//     pipeline regenerating figures) can branch on cause
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code identifies one failure category:
//   - DATA_SOURCE: input workbook, sheet, or column missing/unreadable
//   - INVALID_INPUT: mismatched or negative category value arrays
//   - DIVISION_BY_ZERO: zero or negative sample size / group total
//   - EXPORT: failure to write an output artifact
//   - INVALID_FORMAT, INVALID_FIGURE, INVALID_THEME: CLI flag validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "counts/midpoints length mismatch: %d vs %d", a, b)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDataSource, origErr, "open workbook %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input dataset errors
	ErrCodeDataSource Code = "DATA_SOURCE"

	// Aggregate/layout precondition violations
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// Output artifact errors
	ErrCodeExport Code = "EXPORT"

	// CLI validation errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidFigure Code = "INVALID_FIGURE"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"
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
		return e.Message
	}
	return err.Error()
}
