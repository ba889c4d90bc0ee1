package errs

import (
	"errors"
	"fmt"
)

// Code classifies an engine failure for callers and the API layer.
type Code string

const (
	// CodeNotFound indicates a referenced concept, content item, or path
	// does not exist.
	CodeNotFound Code = "NOT_FOUND"
	// CodeInvalidArgument indicates malformed input: an out-of-range node
	// index, an unknown performance rating, a score outside 0-100.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeAlreadyExists indicates a create collided with an existing record.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeConflict indicates an optimistic-concurrency conflict on write.
	// The caller may re-read and retry; the engine never retries itself.
	CodeConflict Code = "CONCURRENT_MODIFICATION"
	// CodeUnavailable indicates a transient store failure. No partial
	// state was written.
	CodeUnavailable Code = "STORE_UNAVAILABLE"
)

// Error is a classified engine error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NotFound builds a CodeNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds a CodeInvalidArgument error.
func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// AlreadyExists builds a CodeAlreadyExists error.
func AlreadyExists(format string, args ...any) *Error {
	return &Error{Code: CodeAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a CodeConflict error.
func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a transient store failure.
func Unavailable(cause error, format string, args ...any) *Error {
	return &Error{Code: CodeUnavailable, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf extracts the Code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
