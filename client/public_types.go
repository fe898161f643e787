package client

import "github.com/ElijahRus250/twitch-api/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Object is a parsed JSON response, returned verbatim.
	Object = types.Object

	// QueryOptions filters the featured, top streams and top games lists.
	QueryOptions = types.QueryOptions

	// Page selects a window of search results.
	Page = types.Page
)

// Search paging defaults.
const (
	DefaultSearchLimit  = types.DefaultSearchLimit
	DefaultSearchOffset = types.DefaultSearchOffset
)

// Decode binds a response payload to a typed struct.
func Decode(obj Object, v any) error { return types.Decode(obj, v) }
