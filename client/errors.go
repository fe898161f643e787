package client

import (
	"github.com/ElijahRus250/twitch-api/client/internal/errors"
)

// RequestError describes a failed request: the operation, the URL and the
// stage it failed at. Use errors.As to inspect it.
type RequestError = errors.RequestError

// ErrorCategory identifies the stage at which a request failed.
type ErrorCategory = errors.ErrorCategory

// Request failure stages.
const (
	CategoryTransport = errors.Transport
	CategoryStatus    = errors.Status
	CategoryDecode    = errors.Decode
)

// ErrUserNotFound is returned when a login name resolves to no user.
var ErrUserNotFound = errors.ErrUserNotFound

// ErrChannelNotFound is returned by ResolvePlaybackURL for unknown channels.
// Its message is the literal "Not Found" sent by the API.
var ErrChannelNotFound = errors.ErrChannelNotFound

// IsNotFound reports whether err is ErrUserNotFound or ErrChannelNotFound.
func IsNotFound(err error) bool { return errors.IsNotFound(err) }

// StatusCode returns the HTTP status carried by err, or 0 when the request
// never got a response.
func StatusCode(err error) int { return errors.StatusCodeOf(err) }

// NewHTTPError builds the error a custom Transport should return for a
// non-2xx response.
func NewHTTPError(rawURL string, statusCode int, body string) error {
	return errors.NewHTTPError("", rawURL, statusCode, body)
}
