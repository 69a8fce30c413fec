package dnsimple

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrNoCredentials       = errors.New("no credentials configured: provide an API key, a password or a token")
	ErrShapeMismatch       = errors.New("response value shape mismatch")
	ErrFieldNotFound       = errors.New("field not found")
	ErrRequiredArgument    = errors.New("required argument missing")
	ErrConditionalArgument = errors.New("argument required by another argument")
	ErrArgumentOutOfRange  = errors.New("argument out of range")
	ErrUnfilledSegment     = errors.New("path segment not supplied")
	ErrMalformedTemplate   = errors.New("malformed path template")
	ErrUnexpectedBody      = errors.New("unexpected response body")
)

// ValidationError reports a required argument that is missing or invalid.
// It is always raised before any network call.
type ValidationError struct {
	Field  string
	Reason error
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid argument %q: %v (%s)", e.Field, e.Reason, e.Detail)
	}

	return fmt.Sprintf("invalid argument %q: %v", e.Field, e.Reason)
}

// Unwrap returns the sentinel reason.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// TemplateError reports a path template that could not be resolved. It
// signals a programming-contract violation and is never retried.
type TemplateError struct {
	Template string
	Segment  string
	Reason   error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("path template %q: %v", e.Template, e.Reason)
	}

	return fmt.Sprintf("path template %q: %v: {%s}", e.Template, e.Reason, e.Segment)
}

// Unwrap returns the sentinel reason.
func (e *TemplateError) Unwrap() error {
	return e.Reason
}

// TransportError wraps a connectivity failure (DNS, refused connection,
// TLS, timeout). The client never retries it.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a body that could not be parsed on a nominally
// successful status.
type DecodeError struct {
	StatusCode int
	Body       string
	Err        error
}

const decodeErrorBodyLimit = 200

// Error implements the error interface.
func (e *DecodeError) Error() string {
	body := e.Body
	if len(body) > decodeErrorBodyLimit {
		body = body[:decodeErrorBodyLimit] + "..."
	}

	return fmt.Sprintf("decoding response (status %d): %v (body: %q)", e.StatusCode, e.Err, body)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ShapeError is returned by typed accessors when a value does not have the
// requested shape.
type ShapeError struct {
	Want string
	Got  string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: want %s, got %s", ErrShapeMismatch, e.Want, e.Got)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// APIError is the error form of a ResponseError value. It is produced on
// demand by Response.Err; the client itself never returns it.
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	if len(e.FieldErrors) == 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, msg)
	}

	fields := SortedFieldNames(e.FieldErrors)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+strings.Join(e.FieldErrors[field], ", "))
	}

	return fmt.Sprintf("API error %d: %s (%s)", e.StatusCode, msg, strings.Join(parts, "; "))
}

// IsNotFound checks if the error or response represents a 404.
func IsNotFound(v any) bool {
	return hasStatus(v, http.StatusNotFound)
}

// IsUnauthorized checks if the error or response represents a 401.
func IsUnauthorized(v any) bool {
	return hasStatus(v, http.StatusUnauthorized)
}

// IsValidationFailure checks if the error or response represents a 422
// reported by the remote service.
func IsValidationFailure(v any) bool {
	return hasStatus(v, http.StatusUnprocessableEntity)
}

func hasStatus(v any, status int) bool {
	switch typed := v.(type) {
	case *Response:
		return typed != nil && typed.Kind() == ResponseError && typed.StatusCode() == status
	case error:
		apiErr := &APIError{}
		if errors.As(typed, &apiErr) {
			return apiErr.StatusCode == status
		}
	}

	return false
}
