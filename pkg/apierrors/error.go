package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain failure carrying a caller-facing numeric code next to the
// message. Codes follow HTTP semantics: 404 for missing entities, 409 for
// violated uniqueness or business rules, 500 for internal faults.
type Error struct {
	Code    int    `json:"errorCode"`
	Message string `json:"errorMessage"`
}

func (e *Error) Error() string { return e.Message }

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf reports a missing entity, naming the identifier that was asked for.
func NotFoundf(format string, args ...any) *Error {
	return Newf(http.StatusNotFound, format, args...)
}

// Conflict reports a violated uniqueness constraint or blocked business rule.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// BadRequest reports a caller-supplied reference that cannot be honored.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Internal reports an unexpected fault without leaking internal detail.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// CodeOf returns the numeric code of err, or 500 when err carries none.
func CodeOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return http.StatusInternalServerError
}

// IsConflictClass reports whether err carries a 4xx code. The routing layer
// renders these as 409 responses; everything else becomes a 500.
func IsConflictClass(err error) bool {
	code := CodeOf(err)
	return code >= 400 && code <= 499
}

// IsNotFound reports whether err is a missing-entity condition.
func IsNotFound(err error) bool {
	return CodeOf(err) == http.StatusNotFound
}
