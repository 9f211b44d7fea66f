// Package apperror defines the typed operational error raised by the account
// service. An *Error carries everything a transport needs to answer the
// caller: a human-readable message, a machine-readable code, and an HTTP-style
// status. Unexpected failures (store unavailability and the like) are never
// wrapped into an *Error; they propagate as plain errors and are recognizable
// by the absence of the Operational flag.
package apperror

import (
	"errors"
	"net/http"
)

// Code is the machine-readable error classifier exposed to callers.
type Code string

const (
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeForbidden    Code = "FORBIDDEN_REQUEST"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeConflict     Code = "CONFLICT"
)

// Error is an expected, caller-facing failure. Values are treated as
// immutable after construction.
type Error struct {
	Message     string
	Code        Code
	StatusCode  int
	Details     any
	Operational bool
}

func (e *Error) Error() string { return e.Message }

// New builds an operational error with the given code and status.
func New(code Code, statusCode int, message string) *Error {
	return &Error{
		Message:     message,
		Code:        code,
		StatusCode:  statusCode,
		Operational: true,
	}
}

// WithDetails returns a copy of e carrying free-form details.
func (e *Error) WithDetails(details any) *Error {
	c := *e
	c.Details = details
	return &c
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, http.StatusNotFound, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, http.StatusForbidden, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, http.StatusBadRequest, message)
}

func Conflict(message string) *Error {
	return New(CodeConflict, http.StatusConflict, message)
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
