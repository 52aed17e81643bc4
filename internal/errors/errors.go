package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/ryancast1/reservations/internal/logger"
)

// ErrNotFound indicates that no reservation exists for the requested ID.
// It is distinct from RepositoryError: the storage layer was reachable and
// answered, the record simply isn't there.
var ErrNotFound = errors.New("booking not found")

// Validation kinds surfaced to users as rejected input.
const (
	KindInvalidDateRange = "invalid date range"
	KindMissingFields    = "missing required fields"
	KindUnknownRoom      = "unknown room"
)

// ValidationError rejects bad input before it reaches storage. It is never
// retried automatically.
type ValidationError struct {
	Kind string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Msg == "" {
		return e.Kind
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewValidation creates a ValidationError with the given kind and message.
func NewValidation(kind, msg string) error {
	return &ValidationError{Kind: kind, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RepositoryError wraps a storage-layer failure. Callers show a generic
// retry-prompting message; the underlying cause goes to the log.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepository wraps err as a RepositoryError for the given operation.
// A nil err returns nil so storage methods can wrap unconditionally.
func NewRepository(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Err: err}
}

// IsRepository reports whether err is (or wraps) a RepositoryError.
func IsRepository(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
