package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of transport. The HTTP layer maps
// each kind to a status code in exactly one place.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindAuth
	KindForbidden
	KindInvalidToken
	KindInternal
)

// StatusInvalidToken is the non-standard status used for invalid or expired
// verification and reset links, so clients can distinguish a dead link from
// a dead session.
const StatusInvalidToken = 489

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidToken:
		return StatusInvalidToken
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewInvalidToken(message string) *Error {
	return &Error{Kind: KindInvalidToken, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// From returns err as an *Error, wrapping anything unexpected as internal so
// no raw error detail ever reaches a response body.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("something went wrong", err)
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
