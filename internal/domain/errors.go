package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes
const (
	EINVALID  = "invalid"   // Invalid input or validation failure
	ENOTFOUND = "not_found" // Resource not found
	ECONFLICT = "conflict"  // Resource conflict (e.g., editing a finalized checklist)
	EINTERNAL = "internal"  // Internal error

	EUNKNOWN    = "unknown_point"             // Point not in the registered checklist version
	EINCOMPLETE = "incomplete_inspection"     // Final report requested below the completion threshold
	ENOCRITICAL = "missing_critical_coverage" // Critical-tier points left unanswered at finalization
)

// Error represents an application error with structured information.
type Error struct {
	Code    string // Machine-readable error code
	Op      string // Operation that failed (e.g., "scoring.classify")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error with the given code, operation, and formatted message.
func Errorf(code, op, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, code, op, message string) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// ErrorCode returns the code of the root error, or EINTERNAL if none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		// For internal errors, return generic message
		if e.Code == EINTERNAL {
			return "An internal error occurred. Please try again later."
		}
		return e.Message
	}
	return "An internal error occurred. Please try again later."
}

// ErrorOp returns the operation of the root error, if any.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Convenience constructors for common error types

// NotFound creates a not found error.
func NotFound(op, resource, id string) *Error {
	return &Error{
		Code:    ENOTFOUND,
		Op:      op,
		Message: fmt.Sprintf("%s with ID %q not found", resource, id),
	}
}

// Invalid creates a validation error.
func Invalid(op, message string) *Error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error, wrapping the underlying error.
func Internal(err error, op, message string) *Error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// UnknownPoint creates an error for a point ID that is not part of the
// registered checklist version. Scoring aborts for that checklist only.
func UnknownPoint(op, pointID, version string) *Error {
	return &Error{
		Code:    EUNKNOWN,
		Op:      op,
		Message: fmt.Sprintf("point %q is not part of checklist version %q", pointID, version),
	}
}

// IncompleteInspection creates the error raised when a final report is
// requested on a checklist below the completion threshold. The message
// carries the actual completion percentage so the caller can act on it.
func IncompleteInspection(op string, completion float64) *Error {
	return &Error{
		Code: EINCOMPLETE,
		Op:   op,
		Message: fmt.Sprintf(
			"inspection is %.1f%% complete; a final report requires at least %.0f%%",
			completion, CompletionThreshold),
	}
}

// MissingCriticalCoverage creates the error raised when finalizing a
// checklist that still has unanswered critical-tier points. The message
// names the missing points.
func MissingCriticalCoverage(op string, pointIDs []string) *Error {
	return &Error{
		Code: ENOCRITICAL,
		Op:   op,
		Message: fmt.Sprintf(
			"critical points must be explicitly assessed before finalizing: %s",
			strings.Join(pointIDs, ", ")),
	}
}
