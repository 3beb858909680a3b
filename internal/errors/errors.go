// Package errors provides standardized domain errors with codes for the
// cardtraders infrastructure tools.
//
// Usage:
//
//	// In packages - return typed errors
//	if !categories[c] {
//	    return errors.Validationf("unknown category %q", c)
//	}
//
//	// In main - check with errors.Is, map to a process exit code
//	if err := run(); err != nil {
//	    log.Error("seed failed", "error", err)
//	    os.Exit(errors.ExitCode(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the tools.
const (
	CodeConfig     Code = "CONFIG"
	CodeConnect    Code = "CONNECT"
	CodeAuth       Code = "AUTH"
	CodeValidation Code = "VALIDATION"
	CodeConflict   Code = "CONFLICT"
	CodeNotFound   Code = "NOT_FOUND"
	CodeInternal   Code = "INTERNAL"
)

// ExitStatus returns the process exit status for an error code. Each failure
// class gets a distinct non-zero status so wrapper scripts can tell a bad
// flag from an unreachable datastore.
func (c Code) ExitStatus() int {
	switch c {
	case CodeConfig:
		return 2
	case CodeConnect:
		return 3
	case CodeAuth:
		return 4
	case CodeValidation:
		return 5
	case CodeConflict:
		return 6
	case CodeNotFound:
		return 7
	default:
		return 1
	}
}

// Error is a domain error with a code, message, and optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// ExitCode returns the exit status for any error. Domain errors map by code,
// everything else is an internal failure; nil means success.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code.ExitStatus()
	}
	return 1
}

// Sentinel errors for use with errors.Is().
var (
	ErrConfig     = &Error{Code: CodeConfig, Message: "configuration error"}
	ErrConnect    = &Error{Code: CodeConnect, Message: "datastore unreachable"}
	ErrAuth       = &Error{Code: CodeAuth, Message: "authentication failed"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConflict   = &Error{Code: CodeConflict, Message: "conflict"}
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// Config creates a configuration error.
func Config(msg string) *Error {
	return &Error{Code: CodeConfig, Message: msg}
}

// Configf creates a configuration error with formatted message.
func Configf(format string, args ...any) *Error {
	return &Error{Code: CodeConfig, Message: fmt.Sprintf(format, args...)}
}

// Connect creates a connectivity error.
func Connect(msg string) *Error {
	return &Error{Code: CodeConnect, Message: msg}
}

// Connectf creates a connectivity error with formatted message.
func Connectf(format string, args ...any) *Error {
	return &Error{Code: CodeConnect, Message: fmt.Sprintf(format, args...)}
}

// Auth creates an authentication error.
func Auth(msg string) *Error {
	return &Error{Code: CodeAuth, Message: msg}
}

// Authf creates an authentication error with formatted message.
func Authf(format string, args ...any) *Error {
	return &Error{Code: CodeAuth, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a conflict error.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Conflictf creates a conflict error with formatted message.
func Conflictf(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
