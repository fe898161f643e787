package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

// SearchChannels runs a channel search.
func SearchChannels(ctx context.Context, f Fetcher, baseURL, query string, page *types.Page) (types.Object, error) {
	limit, offset := page.Resolve()
	u := fmt.Sprintf("%ssearch/channels?query=%s&limit=%d&offset=%d", baseURL, escapeComponent(query), limit, offset)
	return getObject(ctx, f, OpSearchChannels, u)
}

// SearchStreams runs a live stream search.
func SearchStreams(ctx context.Context, f Fetcher, baseURL, query string, page *types.Page) (types.Object, error) {
	limit, offset := page.Resolve()
	u := fmt.Sprintf("%ssearch/streams?query=%s&limit=%d&offset=%d", baseURL, escapeComponent(query), limit, offset)
	return getObject(ctx, f, OpSearchStreams, u)
}

// SearchGames runs a game search; live restricts results to games being
// streamed right now.
func SearchGames(ctx context.Context, f Fetcher, baseURL, query string, live bool) (types.Object, error) {
	u := baseURL + "search/games?query=" + escapeComponent(query) + "&live=" + strconv.FormatBool(live)
	return getObject(ctx, f, OpSearchGames, u)
}
