package types

import "github.com/google/go-querystring/query"

// ------------------------------
// Request Types
// ------------------------------

// QueryOptions filters and paginates the list endpoints (featured streams,
// top streams, top games). Zero fields are left out of the query string so
// the server default applies.
type QueryOptions struct {
	Limit      int    `url:"limit,omitempty"`
	Offset     int    `url:"offset,omitempty"`
	Channel    string `url:"channel,omitempty"`
	Game       string `url:"game,omitempty"`
	Language   string `url:"language,omitempty"`
	StreamType string `url:"stream_type,omitempty"`
}

// Encode returns the query string for o, without the leading '?'.
// A nil receiver encodes to the empty string.
func (o *QueryOptions) Encode() (string, error) {
	if o == nil {
		return "", nil
	}
	v, err := query.Values(o)
	if err != nil {
		return "", err
	}
	return v.Encode(), nil
}

// Default search paging.
const (
	DefaultSearchLimit  = 25
	DefaultSearchOffset = 0
)

// Page selects a window of search results.
type Page struct {
	Limit  int
	Offset int
}

// Resolve returns the limit and offset to send, substituting the defaults
// for a nil page or a zero limit.
func (p *Page) Resolve() (limit, offset int) {
	if p == nil {
		return DefaultSearchLimit, DefaultSearchOffset
	}
	limit = p.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	return limit, p.Offset
}
