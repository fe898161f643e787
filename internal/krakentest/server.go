// Package krakentest provides an in-process fake of the Kraken endpoints the
// client uses. It records every request so tests can assert on URLs and
// headers.
package krakentest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// Request is one request as seen by the server.
type Request struct {
	Method   string
	Path     string
	RawPath  string
	RawQuery string
	Header   http.Header
}

// Server is a fake Kraken API. Create it with New and Close it when done.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	users    map[string]string // login -> id
	live     map[string]bool   // id -> streaming
	failures map[string]int    // path prefix -> status to answer with
}

// New starts a server that knows the given users (login -> id). All of them
// start offline.
func New(users map[string]string) *Server {
	s := &Server{
		users:    make(map[string]string),
		live:     make(map[string]bool),
		failures: make(map[string]int),
	}
	for login, id := range users {
		s.users[strings.ToLower(login)] = id
	}

	r := mux.NewRouter()
	r.Use(s.record, requireClientID)

	k := r.PathPrefix("/kraken").Subrouter()
	k.HandleFunc("/users", s.handleUsers).Methods(http.MethodGet)
	k.HandleFunc("/streams/featured", s.handleFeatured).Methods(http.MethodGet)
	k.HandleFunc("/streams/", s.handleStreams).Methods(http.MethodGet)
	k.HandleFunc("/streams/{id}", s.handleStream).Methods(http.MethodGet)
	k.HandleFunc("/streams", s.handleStreams).Methods(http.MethodGet)
	k.HandleFunc("/games/top", s.handleTopGames).Methods(http.MethodGet)
	k.HandleFunc("/search/{kind:channels|streams|games}", s.handleSearch).Methods(http.MethodGet)

	r.HandleFunc("/api/channels/{user}/access_token", s.handleAccessToken).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the Kraken base to pass to client.WithBaseURL.
func (s *Server) BaseURL() string { return s.URL + "/kraken/" }

// APIURL is the legacy API base to pass to client.WithAPIURL.
func (s *Server) APIURL() string { return s.URL + "/api/" }

// SetLive marks the user with the given id as streaming or offline.
func (s *Server) SetLive(id string, live bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[id] = live
}

// FailWith makes every request whose path starts with prefix answer status.
// A status of 0 clears the failure.
func (s *Server) FailWith(prefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, prefix)
		return
	}
	s.failures[prefix] = status
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request. It panics if there is none.
func (s *Server) LastRequest() Request {
	reqs := s.Requests()
	return reqs[len(reqs)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawPath:  r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
		})
		var status int
		for prefix, st := range s.failures {
			if strings.HasPrefix(r.URL.Path, prefix) {
				status = st
			}
		}
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Client-ID") == "" {
			writeError(w, http.StatusBadRequest, "No client id specified")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	login := strings.ToLower(r.URL.Query().Get("login"))
	s.mu.Lock()
	id, ok := s.users[login]
	s.mu.Unlock()

	users := []any{}
	if ok {
		users = append(users, map[string]any{"_id": id, "name": login, "display_name": login, "type": "user"})
	}
	writeJSON(w, http.StatusOK, map[string]any{"_total": len(users), "users": users})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	live := s.live[id]
	var login string
	for l, uid := range s.users {
		if uid == id {
			login = l
		}
	}
	s.mu.Unlock()

	if !live {
		writeJSON(w, http.StatusOK, map[string]any{"stream": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stream": Stream(id, login, "Halo 3", 1200)})
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"featured": []any{
			map[string]any{"title": "Featured", "priority": 5, "sponsored": false, "stream": Stream("1", "featured", "Dota 2", 9001)},
		},
	})
}

func (s *Server) handleStreams(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		game = "Dota 2"
	}
	limit := min(max(intParam(r.URL.Query(), "limit", 25), 0), 3)
	streams := make([]any, 0, limit)
	for i := 0; i < limit; i++ {
		streams = append(streams, Stream(strconv.Itoa(100+i), fmt.Sprintf("streamer%d", i), game, 1000-i))
	}
	writeJSON(w, http.StatusOK, map[string]any{"_total": len(streams), "streams": streams})
}

func (s *Server) handleTopGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"_total": 2,
		"top": []any{
			map[string]any{"channels": 900, "viewers": 120000, "game": map[string]any{"_id": 29595, "name": "Dota 2"}},
			map[string]any{"channels": 400, "viewers": 60000, "game": map[string]any{"_id": 12345, "name": "Halo 3"}},
		},
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	q := r.URL.Query()
	hit := map[string]any{"name": q.Get("query")}
	writeJSON(w, http.StatusOK, map[string]any{
		"_total": 1,
		kind:     []any{hit},
		"query":  q.Get("query"),
		"limit":  q.Get("limit"),
		"offset": q.Get("offset"),
		"live":   q.Get("live"),
	})
}

func (s *Server) handleAccessToken(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	s.mu.Lock()
	_, ok := s.users[user]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	token, _ := json.Marshal(map[string]any{"channel": user, "expires": 1700000000})
	writeJSON(w, http.StatusOK, map[string]any{"token": string(token), "sig": "sig-" + user, "mobile_restricted": false})
}

// Stream builds a stream object shaped like the API's.
func Stream(id, login, game string, viewers int) map[string]any {
	return map[string]any{
		"_id":         id,
		"game":        game,
		"viewers":     viewers,
		"stream_type": "live",
		"channel":     map[string]any{"name": login, "status": "playing " + game},
	}
}

func intParam(q url.Values, key string, def int) int {
	if v, err := strconv.Atoi(q.Get(key)); err == nil {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": http.StatusText(status), "status": status, "message": msg})
}
