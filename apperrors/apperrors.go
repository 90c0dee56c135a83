// apperrors.go - Tagged domain errors mapped to HTTP status codes
// Services return these; the handler boundary converts each kind into
// its proper status code instead of collapsing everything into 500.

package apperrors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal     Kind = iota // Unexpected server fault -> 500
	KindValidation               // Missing/invalid field -> 400
	KindUnauthorized             // Missing/invalid credentials -> 401
	KindForbidden                // Wrong role or owner -> 403
	KindNotFound                 // No matching row -> 404
	KindConflict                 // Duplicate unique key -> 409
)

// Error carries a kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // Optional underlying cause
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong.", Err: err}
}

// FromDB converts a GORM error into a domain error. Record-not-found
// becomes NotFound with the given message; unique-constraint failures
// become Conflict; anything else is Internal.
func FromDB(err error, notFoundMsg string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("Duplicate value for a unique field.")
	default:
		return Internal(err)
	}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to the status code its kind calls for.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
