package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/ElijahRus250/twitch-api/client/internal/errors"
)

// Transport performs a single GET with the given headers and returns the
// response body. Implementations report non-2xx responses with NewHTTPError
// so callers can inspect the status; any other error is treated as a
// connection failure.
//
// Returned *RequestError values are copied before the Client tags them with
// the operation, so an implementation may return the same value repeatedly.
//
// Supply a custom Transport with WithTransport, typically as a test double.
type Transport interface {
	Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error)
}

// restyTransport is the default Transport. It shares the Client's
// *http.Client so timeouts and debug wrapping apply.
type restyTransport struct {
	r *resty.Client
}

func newRestyTransport(hc *http.Client) *restyTransport {
	return &restyTransport{r: resty.NewWithClient(hc)}
}

func (t *restyTransport) Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	req := t.r.R().SetContext(ctx)
	for k, vs := range header {
		for _, v := range vs {
			req.SetHeaderVerbatim(k, v)
		}
	}
	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, errors.NewHTTPError("", rawURL, resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
