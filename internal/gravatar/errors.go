package gravatar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// APIError represents a non-2xx response from the profile directory.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gravatar: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// RateLimitError represents a 429 response. Terminal and surfaced,
// never retried within the scan.
type RateLimitError struct {
	// RetryAfter is the advertised wait before the limit resets.
	// Zero when the service sent no reset guidance.
	RetryAfter time.Duration
	// ResetAt is the absolute reset time, if advertised.
	ResetAt time.Time
	// Authenticated records whether the request carried an API key,
	// which changes the guidance given to the user.
	Authenticated bool
}

func (e *RateLimitError) Error() string {
	var b strings.Builder
	b.WriteString("gravatar: rate limit exceeded (429).")
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, " Wait %d seconds for reset.", int(e.RetryAfter.Seconds()))
	}
	if e.Authenticated {
		b.WriteString(" Please contact Gravatar to increase your usage limit.")
	} else {
		b.WriteString(" Consider getting an API key at https://gravatar.com/developers/applications for higher rate limits.")
	}
	return b.String()
}

// IsNotFound checks if the error indicates the profile does not exist or
// is private.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}
