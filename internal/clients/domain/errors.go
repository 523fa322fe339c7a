package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the upstream client or the services
// wraps exactly one of these, so callers classify with errors.Is.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrNotFound              = errors.New("not found")
	ErrUpstreamRejected      = errors.New("upstream rejected")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrMalformedResponse     = errors.New("malformed upstream response")
)

// Error carries a human-readable message for the caller together with the
// kind of failure and the operation that produced it.
type Error struct {
	Kind    error
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind error, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around a lower-level cause.
func Wrap(kind error, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// Op returns the operation recorded on err, or "" when err carries none.
func Op(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Op
	}
	return ""
}
