package api

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"testing"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
)

const (
	apiBase   = "http://api.twitch.tv/api/"
	usherBase = "http://usher.twitch.tv/api/channel/hls/"
)

func TestPlaybackURL_LowercasesUser(t *testing.T) {
	t.Parallel()
	f := bodyFetcher(`{"token":"{\"channel\":\"someuser\"}","sig":"abc123","mobile_restricted":false}`)
	got, err := PlaybackURL(context.Background(), f, apiBase, usherBase, "SomeUser", 424242)
	if err != nil {
		t.Fatalf("PlaybackURL: %v", err)
	}
	if f.urls[0] != apiBase+"channels/someuser/access_token" {
		t.Fatalf("unexpected token url %s", f.urls[0])
	}
	if !strings.HasPrefix(got, usherBase+"someuser.m3u8?") {
		t.Fatalf("unexpected manifest url %s", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse manifest url: %v", err)
	}
	q := u.Query()
	want := map[string]string{
		"token":            `{"channel":"someuser"}`,
		"sig":              "abc123",
		"allow_audio_only": "true",
		"allow_source":     "true",
		"type":             "any",
		"player":           "twitchweb",
		"p":                "424242",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("param %s: got %q want %q", k, q.Get(k), v)
		}
	}
	if strings.Contains(got, "{random}") {
		t.Fatal("placeholder left in manifest url")
	}
}

func TestPlaybackURL_NotFoundBody(t *testing.T) {
	t.Parallel()
	_, err := PlaybackURL(context.Background(), bodyFetcher(`{"error":"Not Found","status":404,"message":"Channel 'ghost' does not exist"}`), apiBase, usherBase, "ghost", 1)
	if !stderrors.Is(err, errors.ErrChannelNotFound) || err.Error() != "Not Found" {
		t.Fatalf("expected literal Not Found, got %v", err)
	}
}

func TestPlaybackURL_NotFoundStatus(t *testing.T) {
	t.Parallel()
	f := &stubFetcher{respond: func(op, rawURL string) ([]byte, error) {
		return nil, errors.NewHTTPError(op, rawURL, 404, `{"error":"Not Found","status":404}`)
	}}
	_, err := PlaybackURL(context.Background(), f, apiBase, usherBase, "ghost", 1)
	if !stderrors.Is(err, errors.ErrChannelNotFound) {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestPlaybackURL_PropagatesErrors(t *testing.T) {
	t.Parallel()
	if _, err := PlaybackURL(context.Background(), errFetcher(), apiBase, usherBase, "x", 1); err == nil {
		t.Fatal("transport failure must be returned")
	}

	f := &stubFetcher{respond: func(op, rawURL string) ([]byte, error) {
		return nil, errors.NewHTTPError(op, rawURL, 500, "oops")
	}}
	_, err := PlaybackURL(context.Background(), f, apiBase, usherBase, "x", 1)
	if errors.StatusCodeOf(err) != 500 {
		t.Fatalf("expected status error, got %v", err)
	}

	_, err = PlaybackURL(context.Background(), bodyFetcher("<html>"), apiBase, usherBase, "x", 1)
	if cat, ok := errors.CategoryOf(err); !ok || cat != errors.Decode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestPlaybackURL_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := bodyFetcher(`{"token":"t","sig":"s"}`)

	_, err := PlaybackURL(ctx, f, apiBase, usherBase, "SomeUser", 1)
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var re *errors.RequestError
	if !stderrors.As(err, &re) || re.Category != errors.Transport {
		t.Fatalf("expected transport RequestError, got %#v", err)
	}
	if re.Op != OpAccessToken || re.URL != apiBase+"channels/someuser/access_token" {
		t.Fatalf("unexpected op/url %q %q", re.Op, re.URL)
	}
	if f.calls() != 0 {
		t.Fatalf("no request expected, got %d", f.calls())
	}
}
