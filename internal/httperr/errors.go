package httperr

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// Kind enumerates the failure taxonomy every handler response maps into.
type Kind int

const (
	KindAuthMissing Kind = iota
	KindAuthExpired
	KindAuthInvalid
	KindBadCredentials
	KindForbidden
	KindValidation
	KindConflict
	KindNotFound
	KindRateLimited
	KindUnavailable
	KindInternal
)

// Error is a taxonomy-mapped failure. Message is client-safe; Err is the
// internal cause and is only exposed outside production.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Status() int {
	switch e.Kind {
	case KindAuthMissing, KindAuthExpired, KindAuthInvalid, KindBadCredentials:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func AuthMissing(message string) *Error    { return New(KindAuthMissing, message) }
func AuthExpired(message string) *Error    { return New(KindAuthExpired, message) }
func AuthInvalid(message string) *Error    { return New(KindAuthInvalid, message) }
func BadCredentials(message string) *Error { return New(KindBadCredentials, message) }
func Forbidden(message string) *Error      { return New(KindForbidden, message) }
func Conflict(message string) *Error       { return New(KindConflict, message) }
func NotFound(message string) *Error       { return New(KindNotFound, message) }
func RateLimited(message string) *Error    { return New(KindRateLimited, message) }
func Unavailable(message string) *Error    { return New(KindUnavailable, message) }

// Validation carries the full list of violated field rules, never just the
// first one.
func Validation(violations []string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Violations: violations}
}

// Internal wraps an unexpected error; the client message stays generic.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From coerces any error into a taxonomy error. Known datastore failures map
// to their taxonomy members instead of leaking raw driver errors.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case mongo.IsDuplicateKeyError(err):
		return Conflict("resource already exists")
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound("resource not found")
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return &Error{Kind: KindUnavailable, Message: "datastore unavailable", Err: err}
	default:
		return Internal(err)
	}
}
