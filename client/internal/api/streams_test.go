package api

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
	"github.com/ElijahRus250/twitch-api/client/internal/types"
)

const streamsBody = `{"_total":2,"streams":[{"_id":1,"viewers":100,"channel":{"name":"a"}},{"_id":2,"viewers":50,"channel":{"name":"b"}}]}`

func TestListEndpoints_URLs(t *testing.T) {
	t.Parallel()
	type call func(f Fetcher, opts *types.QueryOptions) (types.Object, error)
	cases := []struct {
		name     string
		call     call
		opts     *types.QueryOptions
		wantURL  string
		wantOpID string
	}{
		{"top streams no opts", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return TopStreams(context.Background(), f, base, o)
		}, nil, base + "streams", OpTopStreams},
		{"top streams limit", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return TopStreams(context.Background(), f, base, o)
		}, &types.QueryOptions{Limit: 10}, base + "streams?limit=10", OpTopStreams},
		{"top streams empty opts", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return TopStreams(context.Background(), f, base, o)
		}, &types.QueryOptions{}, base + "streams", OpTopStreams},
		{"featured", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return FeaturedStreams(context.Background(), f, base, o)
		}, &types.QueryOptions{Limit: 5, Offset: 5}, base + "streams/featured?limit=5&offset=5", OpFeaturedStreams},
		{"featured no opts", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return FeaturedStreams(context.Background(), f, base, o)
		}, nil, base + "streams/featured", OpFeaturedStreams},
		{"top games", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return TopGames(context.Background(), f, base, o)
		}, &types.QueryOptions{Limit: 3}, base + "games/top?limit=3", OpTopGames},
		{"top games no opts", func(f Fetcher, o *types.QueryOptions) (types.Object, error) {
			return TopGames(context.Background(), f, base, o)
		}, nil, base + "games/top", OpTopGames},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			f := bodyFetcher(streamsBody)
			if _, err := c.call(f, c.opts); err != nil {
				t.Fatalf("call: %v", err)
			}
			if f.urls[0] != c.wantURL || f.ops[0] != c.wantOpID {
				t.Fatalf("got %s (%s), want %s (%s)", f.urls[0], f.ops[0], c.wantURL, c.wantOpID)
			}
		})
	}
}

func TestTopStreams_FilterOptions(t *testing.T) {
	t.Parallel()
	f := bodyFetcher(streamsBody)
	opts := &types.QueryOptions{Game: "Dota 2", Language: "en", StreamType: "live", Channel: "a,b"}
	if _, err := TopStreams(context.Background(), f, base, opts); err != nil {
		t.Fatal(err)
	}
	want := base + "streams?channel=a%2Cb&game=Dota+2&language=en&stream_type=live"
	if f.urls[0] != want {
		t.Fatalf("got %s want %s", f.urls[0], want)
	}
}

func TestTopStreams_RoundTrip(t *testing.T) {
	t.Parallel()
	got, err := TopStreams(context.Background(), bodyFetcher(streamsBody), base, nil)
	if err != nil {
		t.Fatal(err)
	}
	var want types.Object
	if err := json.Unmarshal([]byte(streamsBody), &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("payload changed in transit:\n got %v\nwant %v", got, want)
	}
}

func TestTopStreams_DecodeError(t *testing.T) {
	t.Parallel()
	_, err := TopStreams(context.Background(), bodyFetcher("{bad json"), base, nil)
	if cat, ok := errors.CategoryOf(err); !ok || cat != errors.Decode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestStreamsByGame_EncodesGame(t *testing.T) {
	t.Parallel()
	f := bodyFetcher(streamsBody)
	if _, err := StreamsByGame(context.Background(), f, base, "Halo 3"); err != nil {
		t.Fatal(err)
	}
	if f.urls[0] != base+"streams/?game=Halo%203" {
		t.Fatalf("unexpected url %s", f.urls[0])
	}
	if strings.Contains(f.urls[0], " ") {
		t.Fatal("raw space leaked into url")
	}
}
