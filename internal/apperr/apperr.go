// Package apperr defines the closed error type every request-facing
// operation fails with. Handlers serialize these into the uniform
// response envelope; anything that is not an *Error reaches the client
// as a generic 500 so store and network detail never leaks.
package apperr

import (
	"errors"
	"net/http"
)

const internalMessage = "Something went wrong. Please try again"

type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "Unauthorized")
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal() *Error {
	return New(http.StatusInternalServerError, internalMessage)
}

// From normalizes any error to an *Error. Unrecognized errors map to the
// generic internal failure.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal()
}
