// internal/apperrors/errors.go
package apperrors

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

// Kind classifies a failure so the transport layer can pick a status code
// without string-matching messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindInvalidState
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindForbidden:
		return "FORBIDDEN"
	case KindInvalidState:
		return "INVALID_STATE"
	case KindInvariant:
		return "INVARIANT_VIOLATION"
	default:
		return "INTERNAL_ERROR"
	}
}

type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Kind() Kind    { return e.kind }

func New(kind Kind, msg string) error {
	return &Error{kind: kind, err: cr.NewWithDepth(1, msg)}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, err: cr.NewWithDepthf(1, format, args...)}
}

// Wrap tags err with a kind while preserving the cause chain.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, err: cr.Wrap(err, msg)}
}

// Internal wraps an unexpected failure without assigning a client-facing
// kind; it surfaces as a server error.
func Internal(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func NotFound(msg string) error     { return New(KindNotFound, msg) }
func Forbidden(msg string) error    { return New(KindForbidden, msg) }
func InvalidState(msg string) error { return New(KindInvalidState, msg) }
func Invariant(msg string) error    { return New(KindInvariant, msg) }
func Validation(msg string) error   { return New(KindValidation, msg) }

func Validationf(format string, args ...interface{}) error {
	return Newf(KindValidation, format, args...)
}

// KindOf extracts the kind from anywhere in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
