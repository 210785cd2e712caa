package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorWorker   = 2   // Indicates a worker process or thread failed.
	ExitErrorMismatch = 3   // Indicates a sum mismatch between benchmark modes.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// SpawnError represents a failure to launch a worker process.
type SpawnError struct {
	// WorkerID identifies the worker that failed to start.
	WorkerID int
	// Cause is the underlying error from the OS.
	Cause error
}

// Error returns a formatted message describing the spawn failure.
func (e SpawnError) Error() string {
	return fmt.Sprintf("spawning worker %d: %v", e.WorkerID, e.Cause)
}

// Unwrap returns the underlying cause of the SpawnError.
func (e SpawnError) Unwrap() error { return e.Cause }

// ChannelError represents a failure on a worker result channel: a pipe that
// could not be created, a short read, or a channel closed before the full
// result record arrived.
type ChannelError struct {
	// WorkerID identifies the worker whose channel failed.
	WorkerID int
	// Op is the channel operation that failed ("create", "read", "write", "close").
	Op string
	// Cause is the underlying I/O error, if any.
	Cause error
}

// Error returns a formatted message describing the channel failure.
func (e ChannelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("worker %d result channel %s: %v", e.WorkerID, e.Op, e.Cause)
	}
	return fmt.Sprintf("worker %d result channel %s failed", e.WorkerID, e.Op)
}

// Unwrap returns the underlying cause of the ChannelError.
func (e ChannelError) Unwrap() error { return e.Cause }

// SegmentError represents a shared memory segment failure: creation, opening,
// mapping, or destruction of the named segment.
type SegmentError struct {
	// Name is the segment name involved in the failure.
	Name string
	// Op is the segment operation that failed ("create", "open", "map", "destroy").
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the segment failure.
func (e SegmentError) Error() string {
	return fmt.Sprintf("shared segment %q %s: %v", e.Name, e.Op, e.Cause)
}

// Unwrap returns the underlying cause of the SegmentError.
func (e SegmentError) Unwrap() error { return e.Cause }

// WorkerError represents a worker process that terminated abnormally or
// exited with a nonzero status.
type WorkerError struct {
	// WorkerID identifies the failed worker.
	WorkerID int
	// Status is the worker's exit status, when known.
	Status int
	// Cause is the underlying wait error, if any.
	Cause error
}

// Error returns a formatted message describing the worker failure.
func (e WorkerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("worker %d: %v", e.WorkerID, e.Cause)
	}
	return fmt.Sprintf("worker %d exited with status %d", e.WorkerID, e.Status)
}

// Unwrap returns the underlying cause of the WorkerError.
func (e WorkerError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
