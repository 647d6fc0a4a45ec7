// Package errors provides the error categories used by the timex CLI.
// UserError covers input the user can fix (an unparseable reference, a bad
// flag value); SystemError covers the storage layer and the environment.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrInvalidTimex      = errors.New("invalid TIMEX expression")
	ErrInvalidReference  = errors.New("invalid reference time")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidColorMode  = errors.New("invalid color mode")
	ErrMissingArgument   = errors.New("missing argument")
	ErrHistoryDisabled   = errors.New("history is disabled")
	ErrDatabaseCorrupted = errors.New("database corrupted")
	ErrLockHeld          = errors.New("database locked by another process")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDiskFull          = errors.New("disk full")
)

// UserError is an error the user can fix by changing the input.
type UserError struct {
	Message    string
	Suggestion string
	Field      string // flag or setting at fault, optional
	Value      string // offending value, optional
	Cause      error
}

func (e *UserError) Error() string {
	if e.Field == "" || e.Value == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
}

func (e *UserError) Unwrap() error { return e.Cause }

// NewUserError creates a UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// NewUserErrorWithField creates a UserError naming the field and value at
// fault.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Field: field, Value: value}
}

// SystemError is a failure of the environment: the history store, the
// file system.
type SystemError struct {
	Message string
	Cause   error
	Op      string // optional
}

func (e *SystemError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Message + " during " + e.Op
}

func (e *SystemError) Unwrap() error { return e.Cause }

// NewSystemError creates a SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// NewSystemErrorWithOp creates a SystemError for a failed operation.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause, Op: op}
}

func as[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}

func IsUserError(err error) bool {
	_, ok := as[*UserError](err)
	return ok
}

func IsSystemError(err error) bool {
	_, ok := as[*SystemError](err)
	return ok
}

// AsUserError returns the first UserError in err's chain.
func AsUserError(err error) (*UserError, bool) { return as[*UserError](err) }

// AsSystemError returns the first SystemError in err's chain.
func AsSystemError(err error) (*SystemError, bool) { return as[*SystemError](err) }

// Wrap prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
