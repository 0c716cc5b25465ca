package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error into one of the categories the
// HTTP layer knows how to translate.
type Kind string

const (
	// KindNotFound indicates a referenced entity or file is absent.
	KindNotFound Kind = "not_found"
	// KindConflict indicates a duplicate unique key or a competing operation.
	KindConflict Kind = "conflict"
	// KindExternalService indicates storage or database being unreachable.
	KindExternalService Kind = "external_service"
	// KindValidation indicates malformed input.
	KindValidation Kind = "validation"
)

// Error is the single error type services return to the HTTP layer.
// Raw infrastructure errors are wrapped before they escape a service.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, kept for logging but never exposed
	// in HTTP responses.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a NotFound error with the given user-facing message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict creates a Conflict error with the given user-facing message.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// ExternalService wraps a storage/database failure with a user-facing message.
func ExternalService(message string, err error) *Error {
	return &Error{Kind: KindExternalService, Message: message, Err: err}
}

// Validation creates a Validation error with the given user-facing message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error,
// or an empty Kind otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// MessageOf returns the user-facing message of err if it is (or wraps)
// an *Error, or a generic message otherwise. It never leaks internal
// detail from unclassified errors.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
