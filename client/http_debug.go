package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging Kraken API calls.
//
// Purpose:
//   - Troubleshoot rejected requests (missing or wrong Client-ID, 400/404 answers)
//   - Inspect the exact URL sent, including query encoding of search and list options
//   - See raw response bodies when a payload fails to decode
//
// When to use:
//   - Set TWITCH_DEBUG=true or DEBUG=true in the environment
//   - Pass WithDebugLogging(true), or --debug on twitchctl
//   - While investigating an issue, with the global zerolog level at debug
//
// Security considerations:
//   - Dumps include the Client-ID header and full response bodies
//   - Playback access tokens and signatures appear in the dumps
//   - Keep the output out of shared or production logs
//
// Performance impact:
//   - Every request and response body is buffered and copied for the dump
//
// Example usage:
//
//	export TWITCH_DEBUG=true
//	twitchctl top-games  # every HTTP exchange is logged at debug level
//
// When base is nil, http.DefaultTransport is used.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether debug logging was requested through
// the environment. New checks it once and installs debugTransport when
// TWITCH_DEBUG or DEBUG is exactly "true"; other values, including "1",
// leave logging off.
func debugLoggingRequested() bool {
	return os.Getenv("TWITCH_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
