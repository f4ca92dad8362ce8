package main

import (
	"errors"

	"github.com/matsen/citegraph/internal/config"
	"github.com/matsen/citegraph/internal/explore"
	"github.com/matsen/citegraph/internal/scholar"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, invalid output paths)
	ExitDataError   = 3 // Data error (no results on the search page)
	ExitFetchError  = 4 // Fetch error (network, rate limit, CAPTCHA)
)

// exitCodeFor maps an error to the exit code reported for it.
func exitCodeFor(err error) int {
	var httpErr *scholar.HTTPError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, explore.ErrNoResults):
		return ExitDataError
	case errors.Is(err, explore.ErrFetch),
		scholar.IsRateLimited(err),
		scholar.IsBlocked(err),
		errors.Is(err, scholar.ErrNetworkError),
		errors.As(err, &httpErr):
		return ExitFetchError
	default:
		return ExitError
	}
}

// fetchHint suggests what to do about a fetch failure, or returns "".
func fetchHint(err error) string {
	switch {
	case scholar.IsRateLimited(err):
		return "Google Scholar is rate limiting; wait a while or lower requests_per_second in " + config.GlobalConfigPath()
	case scholar.IsBlocked(err):
		return "Google Scholar wants a CAPTCHA; solve it in a browser, then retry"
	default:
		return ""
	}
}

// exitWithFetchError reports err, prefixed with context if given, adds a
// hint when one applies, and exits.
func exitWithFetchError(context string, err error) {
	msg := err.Error()
	if context != "" {
		msg = context + ": " + msg
	}
	if hint := fetchHint(err); hint != "" {
		exitWithError(exitCodeFor(err), "%s\n\n%s", msg, hint)
	}
	exitWithError(exitCodeFor(err), "%s", msg)
}
