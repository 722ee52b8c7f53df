// Package errors provides structured error types for ifcgraph.
//
// Every error the CLI reports to a user carries a [Code], so the interactive
// driver can tell a bad selection (recoverable, print and exit normally) from
// a genuine failure.
//
// # Error Codes
//
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Missing files or tags
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTagNotFound, "tag %s does not exist", tag)
//	if errors.IsLookup(err) {
//	    printWarning(w, "unknown tag")
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidFile, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
	"slices"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFile   Code = "INVALID_FILE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeTagNotFound  Code = "TAG_NOT_FOUND"

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

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

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

// Is reports whether err, or any error it wraps, is an *Error with code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// IsAny reports whether err carries one of codes.
func IsAny(err error, codes ...Code) bool {
	got := GetCode(err)
	return got != "" && slices.Contains(codes, got)
}

// IsSelection reports whether err means the chosen input file is unusable:
// missing, unreadable or not an IFC file.
func IsSelection(err error) bool {
	return IsAny(err, ErrCodeInvalidFile, ErrCodeFileNotFound)
}

// IsLookup reports whether err means the starting tag is not in the model.
func IsLookup(err error) bool {
	return Is(err, ErrCodeTagNotFound)
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of an *Error without its code prefix, or
// err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
