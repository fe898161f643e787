package errors

import "fmt"

// NewHTTPError creates a status error for a non-2xx response.
func NewHTTPError(op, url string, statusCode int, body string) *RequestError {
	return &RequestError{
		Category:   Status,
		Op:         op,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("GET %s failed: HTTP %d", url, statusCode),
	}
}

// NewNetworkError creates a transport error for connection-level failures.
func NewNetworkError(op, url string, err error) *RequestError {
	return &RequestError{
		Category:   Transport,
		Op:         op,
		URL:        url,
		Underlying: fmt.Errorf("network error: %w", err),
	}
}

// NewDecodeError creates an error for a 2xx body that is not valid JSON.
func NewDecodeError(op, url string, body []byte, err error) *RequestError {
	return &RequestError{
		Category:   Decode,
		Op:         op,
		URL:        url,
		Body:       string(body),
		Underlying: fmt.Errorf("decode response: %w", err),
	}
}
