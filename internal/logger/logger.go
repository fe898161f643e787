// Package logger provides the zerolog setup shared by the twitchctl and
// twitch-mcp-server binaries.
package logger

import (
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns a JSON logger writing to w, tagged with the service name.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName string, w io.Writer) zerolog.Logger {
	installStackMarshaler()
	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Console returns a human readable logger for interactive use.
func Console(w io.Writer) zerolog.Logger {
	installStackMarshaler()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger()
}

// installStackMarshaler makes .Stack() render a trace even for errors that
// were not created with pkg/errors.
func installStackMarshaler() {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}

// ParseLevel maps debug|info|warn|error (any case) to a zerolog level.
// Anything else yields info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
