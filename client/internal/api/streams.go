package api

import (
	"context"

	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

// FeaturedStreams lists the streams featured on the front page.
func FeaturedStreams(ctx context.Context, f Fetcher, baseURL string, opts *types.QueryOptions) (types.Object, error) {
	u, err := withOptions(baseURL+"streams/featured", opts)
	if err != nil {
		return nil, err
	}
	return getObject(ctx, f, OpFeaturedStreams, u)
}

// TopStreams lists live streams ordered by viewers.
func TopStreams(ctx context.Context, f Fetcher, baseURL string, opts *types.QueryOptions) (types.Object, error) {
	u, err := withOptions(baseURL+"streams", opts)
	if err != nil {
		return nil, err
	}
	return getObject(ctx, f, OpTopStreams, u)
}

// StreamsByGame lists live streams playing game.
func StreamsByGame(ctx context.Context, f Fetcher, baseURL, game string) (types.Object, error) {
	return getObject(ctx, f, OpStreamsByGame, baseURL+"streams/?game="+escapeComponent(game))
}
