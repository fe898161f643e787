package api

import (
	"context"

	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

// TopGames lists games ordered by current viewers.
func TopGames(ctx context.Context, f Fetcher, baseURL string, opts *types.QueryOptions) (types.Object, error) {
	u, err := withOptions(baseURL+"games/top", opts)
	if err != nil {
		return nil, err
	}
	return getObject(ctx, f, OpTopGames, u)
}
