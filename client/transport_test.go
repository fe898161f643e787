package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
)

// recordingTransport is a Transport double that records calls.
type recordingTransport struct {
	mu      sync.Mutex
	urls    []string
	headers []http.Header
	respond func(rawURL string) ([]byte, error)
}

func (rt *recordingTransport) Get(_ context.Context, rawURL string, header http.Header) ([]byte, error) {
	rt.mu.Lock()
	rt.urls = append(rt.urls, rawURL)
	rt.headers = append(rt.headers, header)
	rt.mu.Unlock()
	return rt.respond(rawURL)
}

func TestRequest_HeadersAndTransportDouble(t *testing.T) {
	rt := &recordingTransport{respond: func(string) ([]byte, error) { return []byte(`{"top":[]}`), nil }}
	c, err := New("my-id", "my-secret", WithTransport(rt))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	obj, err := c.FetchTopGames(context.Background(), &QueryOptions{Limit: 2})
	if err != nil {
		t.Fatalf("FetchTopGames: %v", err)
	}
	if _, ok := obj["top"]; !ok {
		t.Fatalf("unexpected payload %v", obj)
	}
	if rt.urls[0] != DefaultBaseURL+"games/top?limit=2" {
		t.Fatalf("unexpected url %s", rt.urls[0])
	}
	h := rt.headers[0]
	if got := h["Client-ID"]; len(got) != 1 || got[0] != "my-id" {
		t.Fatalf("Client-ID header: %v", h)
	}
	if got := h["Accept"]; len(got) != 1 || got[0] != AcceptHeader {
		t.Fatalf("Accept header: %v", h)
	}
}

func TestRequest_ClassifiesPlainErrorsAsTransport(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	rt := &recordingTransport{respond: func(string) ([]byte, error) { return nil, boom }}
	c, _ := New("id", "", WithTransport(rt))

	_, err := c.SearchGames(context.Background(), "x", false)
	if !errors.Is(err, boom) {
		t.Fatalf("original error must stay reachable, got %v", err)
	}
	var re *RequestError
	if !errors.As(err, &re) || re.Category != CategoryTransport || re.Op != "search_games" {
		t.Fatalf("unexpected classification: %#v", err)
	}
}

func TestRequest_CustomTransportStatusError(t *testing.T) {
	rt := &recordingTransport{respond: func(u string) ([]byte, error) { return nil, NewHTTPError(u, 429, "slow down") }}
	c, _ := New("id", "", WithTransport(rt))

	_, err := c.FetchFeaturedStreams(context.Background(), nil)
	if StatusCode(err) != 429 {
		t.Fatalf("expected 429, got %v", err)
	}
	var re *RequestError
	if !errors.As(err, &re) || re.Op != "featured_streams" {
		t.Fatalf("op not filled in: %#v", err)
	}
}

func TestRestyTransport(t *testing.T) {
	var gotHeader http.Header
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotHeader = r.Header
		if strings.Contains(r.URL.Path, "missing") {
			return &http.Response{StatusCode: 404, Body: io.NopCloser(strings.NewReader(`{"error":"Not Found"}`)), Header: make(http.Header), Request: r}, nil
		}
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(`{"ok":true}`)), Header: make(http.Header), Request: r}, nil
	})}
	tr := newRestyTransport(hc)

	body, err := tr.Get(context.Background(), "http://example.com/ok", http.Header{"Client-ID": {"abc"}})
	if err != nil || string(body) != `{"ok":true}` {
		t.Fatalf("Get: %q %v", body, err)
	}
	if gotHeader["Client-ID"][0] != "abc" {
		t.Fatalf("header not sent verbatim: %v", gotHeader)
	}

	_, err = tr.Get(context.Background(), "http://example.com/missing", nil)
	var re *RequestError
	if !errors.As(err, &re) || re.StatusCode != 404 || !strings.Contains(re.Body, "Not Found") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestRequest_SharedTransportErrorIsNotModified(t *testing.T) {
	shared := NewHTTPError("http://example.invalid/", 503, "down")
	rt := &recordingTransport{respond: func(string) ([]byte, error) { return nil, shared }}
	c, _ := New("id", "", WithTransport(rt))

	ops := map[string]func() error{
		"top_games":    func() error { _, err := c.FetchTopGames(context.Background(), nil); return err },
		"top_streams":  func() error { _, err := c.FetchTopStreams(context.Background(), nil); return err },
		"search_games": func() error { _, err := c.SearchGames(context.Background(), "x", true); return err },
	}

	var wg sync.WaitGroup
	errs := make(chan error, 3*len(ops))
	for op, call := range ops {
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func(op string, call func() error) {
				defer wg.Done()
				var re *RequestError
				if err := call(); !errors.As(err, &re) || re.Op != op || re.StatusCode != 503 {
					errs <- fmt.Errorf("%s: unexpected error %#v", op, err)
				}
			}(op, call)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	var re *RequestError
	if !errors.As(shared, &re) || re.Op != "" {
		t.Fatalf("transport error value was modified: %#v", shared)
	}
}
