// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies a failure for callers and for the http status it maps to
// values appear in response envelopes, append new codes at the end
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transport failures reaching a dependency
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeInvalidArgument is for well formed input the service cannot act on
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for input that fails struct validation
	ErrorCodeValidation

	// ErrorCodeJSON is for request bodies that are not valid JSON
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeUpstream is for a dependency that answered with an error status or garbage
	ErrorCodeUpstream
)

var statusOf = map[ErrorCode]int{
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeUpstream:        http.StatusBadGateway,
}

// HTTPStatusCode maps a code to a response status, unlisted codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusOf[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrNotFound is a sentinel not found error for convenience
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a display message, a code and an optional cause
// field names the offending input for validation failures
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Detail is the public part of an error as it appears in a response
type Detail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error joins the message and the cause, a message that already ends with its cause is not repeated
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		if cause := e.orig.Error(); !strings.HasSuffix(e.msg, cause) {
			return e.msg + ": " + cause
		}
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// HTTP resolves err into a status and the detail a client may see
// foreign errors keep their text under ErrorCodeUnknown, nil is a 200 with no detail
func HTTP(err error) (int, Detail) {
	if err == nil {
		return http.StatusOK, Detail{}
	}
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError, Detail{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return HTTPStatusCode(e.code), Detail{Code: e.code, Message: e.msg, Field: e.field}
}

// WithField returns a copy of err naming the offending input, foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

func codef(code ErrorCode) func(string, ...any) error {
	return func(format string, a ...any) error {
		return &Error{code: code, msg: fmt.Sprintf(format, a...)}
	}
}

// Formatted constructors, one per code the service raises
var (
	Validationf  = codef(ErrorCodeValidation)
	JSONErrf     = codef(ErrorCodeJSON)
	PanicErrf    = codef(ErrorCodePanic)
	Unavailablef = codef(ErrorCodeUnavailable)
	Upstreamf    = codef(ErrorCodeUpstream)
	Internalf    = codef(ErrorCodeUnknown)
)
