package scholar

import (
	"errors"
	"fmt"
)

// Common errors returned by the Google Scholar client.
var (
	// ErrRateLimited indicates Google Scholar answered 429 Too Many Requests.
	ErrRateLimited = errors.New("Google Scholar rate limit exceeded")

	// ErrBlocked indicates the request was refused or answered with a CAPTCHA page.
	ErrBlocked = errors.New("Google Scholar blocked the request")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Google Scholar")
)

// HTTPError represents a non-success HTTP status from Google Scholar.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Google Scholar returned HTTP %d for %s", e.StatusCode, e.URL)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429
	}
	return false
}

// IsBlocked returns true if the error indicates Scholar refused to serve results.
func IsBlocked(err error) bool {
	if errors.Is(err, ErrBlocked) {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 403
	}
	return false
}
