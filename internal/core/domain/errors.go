package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent search failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a missing keyword, a negative result
	// count or an unknown result kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates an unknown result kind or backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotImplemented indicates an optional component is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("decode error")

	// ErrTransport is matched by every *TransportError.
	ErrTransport = errors.New("transport error")

	// Remote errors. These are carried inside a *TransportError.

	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("unauthorised")

	// ErrForbidden indicates the key lacks access to the service.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// DecodeError reports a page or field that could not be decoded into
// the expected shape.
type DecodeError struct {
	// Field is the wire field that failed, empty for a whole page.
	Field string

	// Value is the offending raw value, if any.
	Value string

	// Err is the underlying parse error.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode")
	if e.Field != "" {
		b.WriteString(" " + e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both ErrDecode and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}
	return []error{ErrDecode, e.Err}
}

// TransportError is an opaque failure reported by a search backend:
// network errors, non-2xx HTTP statuses and remote error envelopes.
type TransportError struct {
	// Backend names the backend that failed (e.g. "ajax", "books").
	Backend string

	// StatusCode is the HTTP or envelope status, 0 when none was received.
	StatusCode int

	// Details is the server supplied error text, if any.
	Details string

	// Err is the underlying cause.
	Err error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("transport")
	if e.Backend != "" {
		b.WriteString(" (" + e.Backend + ")")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Details != "" {
		b.WriteString(": " + e.Details)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}
