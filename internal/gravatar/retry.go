package gravatar

import (
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
)

// Outcome is the result of one fetch attempt: either a transport-level
// failure (Err set) or a response (status, headers, body).
type Outcome struct {
	Err        error
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
}

// Decision is the retry policy's verdict on an attempt outcome.
type Decision int

const (
	// DecisionSucceed means the body holds a profile document.
	DecisionSucceed Decision = iota
	// DecisionNotFound means the profile is private or does not exist.
	// Not retried, not an error.
	DecisionNotFound
	// DecisionRetry means the failure is transient; retry after the
	// returned backoff delay.
	DecisionRetry
	// DecisionFail means the attempt failed terminally.
	DecisionFail
)

// RetryPolicy classifies attempt outcomes into retry-or-surface
// decisions. Decide is a pure function from (attempt, outcome) to
// (decision, backoff delay, error), so it is testable without a
// transport.
type RetryPolicy struct {
	// MaxAttempts is the total try budget (initial + retries).
	MaxAttempts int
	// BaseDelay is the first backoff delay, doubled per attempt.
	BaseDelay time.Duration
	// Authenticated shapes the guidance in rate-limit errors.
	Authenticated bool
}

// NewRetryPolicy builds the policy from configuration.
func NewRetryPolicy(cfg Config, authenticated bool) RetryPolicy {
	cfg = cfg.withDefaults()
	return RetryPolicy{
		MaxAttempts:   cfg.MaxAttempts,
		BaseDelay:     cfg.RetryBaseDelay,
		Authenticated: authenticated,
	}
}

// Decide classifies the outcome of attempt n (1-based).
//
//   - transport failure or 5xx: retry with exponential backoff, or
//     ErrTransient once the attempt budget is spent
//   - 404: not found, terminal, no error
//   - 429: terminal RateLimitError carrying the advertised wait; never
//     retried here even though the backoff machinery could
//   - 2xx: success (body parsing is the caller's step)
//   - 401/403: ErrAuth, no retry
//   - any other status: APIError, no retry
func (p RetryPolicy) Decide(attempt int, o Outcome) (Decision, time.Duration, error) {
	if o.Err != nil || o.StatusCode >= 500 {
		if attempt >= p.MaxAttempts {
			if o.Err != nil {
				return DecisionFail, 0, fmt.Errorf("%w after %d attempts: %v", domain.ErrTransient, attempt, o.Err)
			}
			return DecisionFail, 0, fmt.Errorf("%w after %d attempts: HTTP %d", domain.ErrTransient, attempt, o.StatusCode)
		}
		return DecisionRetry, p.backoff(attempt), nil
	}

	switch {
	case o.StatusCode == 404:
		return DecisionNotFound, 0, nil

	case o.StatusCode == 429:
		wait, resetAt := retryAfter(o.Header, time.Now())
		return DecisionFail, 0, &RateLimitError{
			RetryAfter:    wait,
			ResetAt:       resetAt,
			Authenticated: p.Authenticated,
		}

	case o.StatusCode >= 200 && o.StatusCode < 300:
		return DecisionSucceed, 0, nil

	case o.StatusCode == 401 || o.StatusCode == 403:
		return DecisionFail, 0, fmt.Errorf("%w: %w", domain.ErrAuth, apiError(o))

	default:
		return DecisionFail, 0, apiError(o)
	}
}

// backoff returns the delay before the next attempt: BaseDelay doubled
// per completed attempt.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	return p.BaseDelay << (attempt - 1)
}

func apiError(o Outcome) *APIError {
	msg := string(o.Body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &APIError{
		StatusCode: o.StatusCode,
		Message:    msg,
		URL:        o.URL,
	}
}
