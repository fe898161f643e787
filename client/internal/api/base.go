package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

// Fetcher performs one authenticated GET and returns the raw body.
// op names the calling operation for logs, metrics and errors.
type Fetcher interface {
	Fetch(ctx context.Context, op, rawURL string) ([]byte, error)
}

// Operation names.
const (
	OpResolveUserID   = "resolve_user_id"
	OpUserStream      = "user_stream"
	OpFeaturedStreams = "featured_streams"
	OpTopStreams      = "top_streams"
	OpTopGames        = "top_games"
	OpStreamsByGame   = "streams_by_game"
	OpSearchChannels  = "search_channels"
	OpSearchStreams   = "search_streams"
	OpSearchGames     = "search_games"
	OpAccessToken     = "access_token"
)

// getObject fetches rawURL and parses the body as a JSON object. A context
// that is already done fails as a transport error without a request.
func getObject(ctx context.Context, f Fetcher, op, rawURL string) (types.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewNetworkError(op, rawURL, err)
	}
	body, err := f.Fetch(ctx, op, rawURL)
	if err != nil {
		return nil, err
	}
	var obj types.Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, errors.NewDecodeError(op, rawURL, body, err)
	}
	return obj, nil
}

// withOptions appends the encoded options to endpoint. Nothing is appended
// when opts is nil or every field is empty.
func withOptions(endpoint string, opts *types.QueryOptions) (string, error) {
	qs, err := opts.Encode()
	if err != nil {
		return "", err
	}
	if qs == "" {
		return endpoint, nil
	}
	return endpoint + "?" + qs, nil
}

// escapeComponent percent-encodes s for use as a single query value,
// spelling spaces as %20 rather than '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, op, rawURL string) ([]byte, error)

// Fetch calls f(ctx, op, rawURL).
func (f FetchFunc) Fetch(ctx context.Context, op, rawURL string) ([]byte, error) {
	return f(ctx, op, rawURL)
}
