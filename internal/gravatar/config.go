package gravatar

import "time"

// Default configuration values.
const (
	// DefaultBaseURL is the public profiles endpoint.
	DefaultBaseURL = "https://api.gravatar.com/v3/profiles"

	// DefaultMaxAttempts is the total try budget per fetch
	// (1 initial + up to 3 retries).
	DefaultMaxAttempts = 4

	// DefaultRetryBaseDelay is the initial backoff delay,
	// doubled per attempt.
	DefaultRetryBaseDelay = time.Second

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// Configuration keys as they appear in the config store and in server
// options.
const (
	OptionAPIURL   = "api_url"
	OptionAPIKey   = "api_key"
	OptionAPIKeyID = "api_key_id"
)

// Config holds session-scoped configuration for the adapter. It is an
// explicit value passed into the request builder at construction, never
// ambient mutable state.
type Config struct {
	// BaseURL is the profiles endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey is a directly-configured API key.
	// Not recommended for production; prefer APIKeyID.
	APIKey string

	// APIKeyID is an opaque reference resolved through the secret store.
	// Takes effect only when APIKey is unset.
	APIKeyID string

	// MaxAttempts bounds the retry loop. Defaults to DefaultMaxAttempts.
	MaxAttempts int

	// RetryBaseDelay is the initial backoff delay.
	// Defaults to DefaultRetryBaseDelay.
	RetryBaseDelay time.Duration
}

// withDefaults fills zero-value fields.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RetryBaseDelay == 0 {
		c.RetryBaseDelay = DefaultRetryBaseDelay
	}
	return c
}
