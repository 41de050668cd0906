package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error into the stable taxonomy exposed by the API.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConfiguration
)

// Error carries a taxonomy kind, a caller-safe message, and an optional
// details string. The wrapped cause is for logs only and never serialized.
type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func WithDetails(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// KindOf extracts the taxonomy kind from err; anything unclassified is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Code returns the stable wire code for a kind.
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindAuthentication:
		return "authentication_error"
	case KindAuthorization:
		return "authorization_error"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration_error"
	default:
		return "internal_error"
	}
}

// HTTPStatus returns the HTTP status a kind maps to. Authorization failures
// are 400, not 403: the ownership check reports a bad request against the
// submitted ids rather than a forbidden resource.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindAuthorization:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
