package client

// Functional options applied by New, in order.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options run in order. WithHTTPClient replaces the underlying client, so
// pass it before WithHTTPTimeout or WithDebugLogging.
type Option func(*Client) error

// WithHTTPClient uses a shallow copy of hc for all requests made by the
// default transport.
//
// The copy shares hc's RoundTripper, cookie jar and redirect policy, but
// later options and the default transport only modify the copy: hc itself
// keeps its Timeout and Transport even when WithHTTPTimeout or
// WithDebugLogging follow.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Without it no timeout applies beyond the caller's context. The value must
// be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// Client-ID header and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); !ok {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithTransport replaces the HTTP transport entirely. The Client still
// builds URLs and headers; t only performs the GET.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.transport = t
		return nil
	}
}

// WithBaseURL overrides the Kraken base URL (default DefaultBaseURL).
func WithBaseURL(u string) Option {
	return func(c *Client) (err error) {
		c.baseURL, err = normalizeBase(u)
		return err
	}
}

// WithAPIURL overrides the legacy API base used for access tokens
// (default DefaultAPIURL).
func WithAPIURL(u string) Option {
	return func(c *Client) (err error) {
		c.apiURL, err = normalizeBase(u)
		return err
	}
}

// WithUsherURL overrides the manifest base used by ResolvePlaybackURL
// (default DefaultUsherURL). It is only embedded in results, never requested.
func WithUsherURL(u string) Option {
	return func(c *Client) (err error) {
		c.usherURL, err = normalizeBase(u)
		return err
	}
}

// normalizeBase checks that u is an absolute URL and ends it with a slash
// so endpoint paths can be appended directly.
func normalizeBase(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", u, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", u)
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u, nil
}
