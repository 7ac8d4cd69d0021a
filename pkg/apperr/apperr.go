package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an error into the closed set the HTTP layer knows how to map.
type Kind int

const (
	Validation Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	Unexpected
)

type Error struct {
	Kind    Kind
	Message string
	Fields  []string // offending fields, validation errors only
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a validation failure naming the offending fields.
func Invalid(message string, fields ...string) *Error {
	return &Error{Kind: Validation, Message: message, Fields: fields}
}

// Status maps an error to its HTTP status code. Anything that is not an
// *Error is treated as unexpected.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-facing error text. Unexpected errors get a
// generic message so internals never leak into responses.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return "Server Error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
