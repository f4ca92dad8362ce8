package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matsen/citegraph/internal/config"
	"github.com/matsen/citegraph/internal/explore"
	"github.com/matsen/citegraph/internal/scholar"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"other", errors.New("boom"), ExitError},
		{"config", fmt.Errorf("loading: %w", config.ErrInvalidConfig), ExitConfigError},
		{"no results", fmt.Errorf("%w for %q", explore.ErrNoResults, "x"), ExitDataError},
		{"search fetch", fmt.Errorf("%w: %w", explore.ErrFetch, errors.New("dial")), ExitFetchError},
		{"rate limited", scholar.ErrRateLimited, ExitFetchError},
		{"blocked", fmt.Errorf("%w: captcha", scholar.ErrBlocked), ExitFetchError},
		{"http status", &scholar.HTTPError{StatusCode: 503, URL: "u"}, ExitFetchError},
		{"wrapped 429", fmt.Errorf("%w: %w", explore.ErrFetch, &scholar.HTTPError{StatusCode: 429, URL: "u"}), ExitFetchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFetchHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limited", fmt.Errorf("%w: %w", explore.ErrFetch, scholar.ErrRateLimited), "rate limiting"},
		{"429 status", &scholar.HTTPError{StatusCode: 429, URL: "u"}, "rate limiting"},
		{"captcha", fmt.Errorf("%w: CAPTCHA page", scholar.ErrBlocked), "CAPTCHA"},
		{"403 status", &scholar.HTTPError{StatusCode: 403, URL: "u"}, "CAPTCHA"},
		{"network", scholar.ErrNetworkError, ""},
		{"no results", explore.ErrNoResults, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fetchHint(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("fetchHint(%v) = %q, want none", tt.err, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("fetchHint(%v) = %q, want it to mention %q", tt.err, got, tt.want)
			}
		})
	}
}
