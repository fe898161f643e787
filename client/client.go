package client

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ElijahRus250/twitch-api/client/internal/api"
	"github.com/ElijahRus250/twitch-api/client/internal/errors"
)

// Default endpoints.
const (
	DefaultBaseURL  = "https://api.twitch.tv/kraken/"
	DefaultAPIURL   = "http://api.twitch.tv/api/"
	DefaultUsherURL = "http://usher.twitch.tv/api/channel/hls/"

	// AcceptHeader selects version 5 of the API.
	AcceptHeader = "application/vnd.twitchtv.v5+json"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues read-only requests against the Kraken v5 API.
//
// Every method builds one endpoint URL, sends it through the Transport with
// the Client-ID and v5 Accept headers, and returns the parsed JSON object.
// FetchUserStream is the only method that makes two requests, and the second
// one starts only after the id lookup succeeded.
//
// Errors:
//   - *RequestError for transport, status and decode failures (see StatusCode)
//   - ErrUserNotFound and ErrChannelNotFound for unknown users and channels
//
// Observability:
//   - A debug log line per request with op, url, req_id and elapsed time
//   - twitch_client_requests_total and twitch_client_request_duration_seconds
//
// A Client holds no mutable state after construction and is safe for
// concurrent use. Cancellation and deadlines come from the caller's context.
type Client struct {
	id     string
	secret string // not sent with any request; kept with the id it belongs to

	baseURL  string
	apiURL   string
	usherURL string

	http      *http.Client
	transport Transport
	fetcher   api.Fetcher
}

// New constructs a Client for the given application credentials.
// The credentials are not checked; a wrong or empty id surfaces as a
// rejected request. Additional options can be provided via functional
// arguments.
func New(id, secret string, opts ...Option) (*Client, error) {
	c := &Client{
		id:       id,
		secret:   secret,
		baseURL:  DefaultBaseURL,
		apiURL:   DefaultAPIURL,
		usherURL: DefaultUsherURL,
		http:     &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = newRestyTransport(c.http)
	}
	c.fetcher = api.FetchFunc(c.request)
	return c, nil
}

// ClientID returns the client identifier sent with every request.
func (c *Client) ClientID() string { return c.id }

// request performs one authenticated GET through the Transport.
func (c *Client) request(ctx context.Context, op, rawURL string) ([]byte, error) {
	header := http.Header{}
	// Assigned directly to keep the documented spelling on the wire.
	header["Client-ID"] = []string{c.id}
	header["Accept"] = []string{AcceptHeader}

	reqID := uuid.NewString()
	start := time.Now()
	body, err := c.transport.Get(ctx, rawURL, header)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		err = classify(op, rawURL, err)
		cat, _ := errors.CategoryOf(err)
		requestsTotal.WithLabelValues(op, cat.String()).Inc()
		log.Debug().
			Err(err).
			Str("op", op).
			Str("url", rawURL).
			Str("req_id", reqID).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return nil, err
	}

	requestsTotal.WithLabelValues(op, "OK").Inc()
	log.Debug().
		Str("op", op).
		Str("url", rawURL).
		Str("req_id", reqID).
		Int("bytes", len(body)).
		Dur("elapsed", elapsed).
		Msg("request completed")
	return body, nil
}

// classify tags err with the operation. Status errors from the Transport
// keep their status and body; everything else becomes a transport error
// wrapping the original. The Transport's error value is copied, never
// modified, since a custom Transport may hand out the same value twice.
func classify(op, rawURL string, err error) error {
	var re *errors.RequestError
	if stderrors.As(err, &re) {
		tagged := *re
		if tagged.Op == "" {
			tagged.Op = op
		}
		return &tagged
	}
	return errors.NewNetworkError(op, rawURL, err)
}

// --------------------------------------------------------------------
// Users and streams - delegated to internal/api
// --------------------------------------------------------------------

// ResolveUserID looks up the numeric id of a login name. It returns an
// error matching ErrUserNotFound when the API knows no such user.
func (c *Client) ResolveUserID(ctx context.Context, username string) (string, error) {
	return api.LookupUserID(ctx, c.fetcher, c.baseURL, username)
}

// FetchUserStream returns the current stream of username. The payload's
// "stream" field is null while the user is offline.
func (c *Client) FetchUserStream(ctx context.Context, username string) (Object, error) {
	return api.GetUserStream(ctx, c.fetcher, c.baseURL, username)
}

// FetchFeaturedStreams lists the featured streams. opts may be nil.
func (c *Client) FetchFeaturedStreams(ctx context.Context, opts *QueryOptions) (Object, error) {
	return api.FeaturedStreams(ctx, c.fetcher, c.baseURL, opts)
}

// FetchTopStreams lists live streams by viewer count. opts may be nil.
func (c *Client) FetchTopStreams(ctx context.Context, opts *QueryOptions) (Object, error) {
	return api.TopStreams(ctx, c.fetcher, c.baseURL, opts)
}

// FetchStreamsByGame lists live streams of one game.
func (c *Client) FetchStreamsByGame(ctx context.Context, game string) (Object, error) {
	return api.StreamsByGame(ctx, c.fetcher, c.baseURL, game)
}

// FetchTopGames lists games by viewer count. opts may be nil.
func (c *Client) FetchTopGames(ctx context.Context, opts *QueryOptions) (Object, error) {
	return api.TopGames(ctx, c.fetcher, c.baseURL, opts)
}

// ResolvePlaybackURL returns the HLS manifest URL of user's live stream.
// Unknown channels yield ErrChannelNotFound.
func (c *Client) ResolvePlaybackURL(ctx context.Context, user string) (string, error) {
	return api.PlaybackURL(ctx, c.fetcher, c.apiURL, c.usherURL, user, rand.IntN(1_000_000))
}

// --------------------------------------------------------------------
// Search - delegated to internal/api
// --------------------------------------------------------------------

// SearchChannels searches channels. A nil page means limit 25, offset 0.
func (c *Client) SearchChannels(ctx context.Context, query string, page *Page) (Object, error) {
	return api.SearchChannels(ctx, c.fetcher, c.baseURL, query, page)
}

// SearchStreams searches live streams. A nil page means limit 25, offset 0.
func (c *Client) SearchStreams(ctx context.Context, query string, page *Page) (Object, error) {
	return api.SearchStreams(ctx, c.fetcher, c.baseURL, query, page)
}

// SearchGames searches games, optionally only those being streamed.
func (c *Client) SearchGames(ctx context.Context, query string, live bool) (Object, error) {
	return api.SearchGames(ctx, c.fetcher, c.baseURL, query, live)
}
