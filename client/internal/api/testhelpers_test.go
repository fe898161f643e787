package api

import (
	"context"
	"fmt"
	"sync"
)

// stubFetcher answers every Fetch from respond and records the URLs it saw.
type stubFetcher struct {
	mu      sync.Mutex
	urls    []string
	ops     []string
	respond func(op, rawURL string) ([]byte, error)
}

func (s *stubFetcher) Fetch(_ context.Context, op, rawURL string) ([]byte, error) {
	s.mu.Lock()
	s.urls = append(s.urls, rawURL)
	s.ops = append(s.ops, op)
	s.mu.Unlock()
	return s.respond(op, rawURL)
}

func (s *stubFetcher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.urls)
}

// bodyFetcher returns body for every request.
func bodyFetcher(body string) *stubFetcher {
	return &stubFetcher{respond: func(string, string) ([]byte, error) { return []byte(body), nil }}
}

// errFetcher fails every request (simulates network failure).
func errFetcher() *stubFetcher {
	return &stubFetcher{respond: func(string, string) ([]byte, error) { return nil, fmt.Errorf("boom") }}
}

const base = "https://api.twitch.tv/kraken/"
