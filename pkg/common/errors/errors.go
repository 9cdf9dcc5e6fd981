package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

// Process exit codes used by the CLI layer.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// RunError represents an application-specific error with a process exit code.
type RunError struct {
	Code    int
	Message string
	Err     error
}

func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError.
func NewRunError(code int, message string, err error) *RunError {
	return &RunError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapError maps a common error to a RunError with an appropriate exit code.
func MapError(err error) *RunError {
	if err == nil {
		return nil
	}

	// Check for existing RunError
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr
	}

	// Map sentinel errors
	if errors.Is(err, ErrInvalidInput) {
		return NewRunError(ExitUsage, "Invalid arguments", err)
	}
	if errors.Is(err, ErrNotFound) {
		return NewRunError(ExitNotFound, "Resource not found", err)
	}

	// Default to internal error
	return NewRunError(ExitInternal, "Internal error", err)
}

// ExitCode returns the process exit code for err, or ExitOK when err is nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return MapError(err).Code
}
