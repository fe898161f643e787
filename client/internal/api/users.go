package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

// LookupUserID resolves a login name to its numeric user id.
func LookupUserID(ctx context.Context, f Fetcher, baseURL, login string) (string, error) {
	obj, err := getObject(ctx, f, OpResolveUserID, baseURL+"users?login="+escapeComponent(login))
	if err != nil {
		return "", err
	}
	users, _ := obj["users"].([]any)
	if len(users) == 0 {
		return "", fmt.Errorf("%w: %s", errors.ErrUserNotFound, login)
	}
	first, _ := users[0].(map[string]any)
	switch id := first["_id"].(type) {
	case string:
		if id != "" {
			return id, nil
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%w: %s", errors.ErrUserNotFound, login)
}

// GetUserStream returns the stream object of the user with the given login.
// The stream lookup only starts once the id lookup succeeded.
func GetUserStream(ctx context.Context, f Fetcher, baseURL, login string) (types.Object, error) {
	id, err := LookupUserID(ctx, f, baseURL, login)
	if err != nil {
		return nil, err
	}
	return getObject(ctx, f, OpUserStream, baseURL+"streams/"+url.PathEscape(id))
}
