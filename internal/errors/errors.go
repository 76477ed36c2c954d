// Package errors provides the error taxonomy shared by the Notion client
// and the tool layer. Every failure carries a Kind so the tool wrapper can
// label metrics without parsing messages; the message itself is what ends
// up in the result envelope.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown covers network faults and anything the API did not explain.
	KindUnknown Kind = iota

	// KindValidation indicates invalid input detected before any network call.
	KindValidation

	// KindNotFound indicates the API (or a local scan) could not locate the object.
	KindNotFound

	// KindRejected indicates the API understood the request and refused it.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Error is a classified failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validationf creates a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

// NotFoundf creates a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Rejectedf creates a KindRejected error.
func Rejectedf(format string, args ...any) *Error {
	return New(KindRejected, format, args...)
}

// KindOf returns the Kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsValidation returns true if the error is a validation failure.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNotFound returns true if the error is a not-found failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
