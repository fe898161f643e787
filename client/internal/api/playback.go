package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

const notFound = "Not Found"

// PlaybackURL obtains a channel access token and builds the HLS manifest URL
// for user. nonce fills the cache-busting p parameter.
func PlaybackURL(ctx context.Context, f Fetcher, apiURL, usherURL, user string, nonce int) (string, error) {
	user = strings.ToLower(user)
	tokenURL := apiURL + "channels/" + url.PathEscape(user) + "/access_token"
	if err := ctx.Err(); err != nil {
		return "", errors.NewNetworkError(OpAccessToken, tokenURL, err)
	}

	body, err := f.Fetch(ctx, OpAccessToken, tokenURL)
	if err != nil {
		// The endpoint answers unknown channels with 404 {"error":"Not Found"}.
		var re *errors.RequestError
		if stderrors.As(err, &re) && re.StatusCode == http.StatusNotFound && bodyError(re.Body) == notFound {
			return "", errors.ErrChannelNotFound
		}
		return "", err
	}

	var tok types.AccessToken
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", errors.NewDecodeError(OpAccessToken, tokenURL, body, err)
	}
	if tok.Error == notFound {
		return "", errors.ErrChannelNotFound
	}

	q := url.Values{}
	q.Set("player", "twitchweb")
	q.Set("token", tok.Token)
	q.Set("sig", tok.Sig)
	q.Set("allow_audio_only", "true")
	q.Set("allow_source", "true")
	q.Set("type", "any")
	q.Set("p", strconv.Itoa(nonce))
	return usherURL + url.PathEscape(user) + ".m3u8?" + q.Encode(), nil
}

func bodyError(body string) string {
	var tok types.AccessToken
	if json.Unmarshal([]byte(body), &tok) != nil {
		return ""
	}
	return tok.Error
}
