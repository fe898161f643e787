// Package errors provides error classification for the client SDK.
// Every failed request surfaces as a *RequestError so callers can tell a
// broken connection from a rejected request or an unreadable body.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory identifies the stage at which a request failed.
type ErrorCategory int

const (
	// Transport errors come from the connection itself: DNS, dial, TLS,
	// context cancellation.
	Transport ErrorCategory = iota

	// Status errors are complete HTTP responses outside the 2xx range.
	Status

	// Decode errors are 2xx responses whose body is not the expected JSON.
	Decode
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Transport:
		return "Transport"
	case Status:
		return "Status"
	case Decode:
		return "Decode"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// RequestError wraps an error with the request it belongs to.
type RequestError struct {
	Category   ErrorCategory
	Op         string // client operation, e.g. "top_streams"
	URL        string
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // Response body for debugging
	Underlying error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d: %v", e.Op, e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s: [%s] %v", e.Op, e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RequestError) Unwrap() error {
	return e.Underlying
}

// CategoryOf reports the category of the first RequestError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Category, true
	}
	return 0, false
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// Domain not-found conditions. ErrChannelNotFound keeps the literal message
// the access-token endpoint answers with.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrChannelNotFound = errors.New("Not Found")
)

// IsNotFound reports whether err is one of the domain not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrChannelNotFound)
}
