package gravatar

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// AnonymousRateLimit is the unauthenticated hourly quota.
	AnonymousRateLimit = 100

	// ProactiveRate is the proactive throttle rate in requests/second.
	// Lookups are interactive and single-key, so a gentle cap suffices.
	ProactiveRate = 2.0

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles outbound lookups proactively and tracks the
// service's advertised quota from response headers.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetTime time.Time
	bucket    *rate.Limiter
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: AnonymousRateLimit,
		limit:     AnonymousRateLimit,
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it is safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// UpdateFromResponse updates quota state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}
	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}
	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Remaining returns the last advertised remaining request count.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the last advertised quota.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the last advertised quota reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}

// retryAfter computes the advertised wait for a 429 response from its
// headers: Retry-After (seconds) wins over X-RateLimit-Reset (epoch
// seconds). Returns zero values when the service sent no guidance.
func retryAfter(header http.Header, now time.Time) (time.Duration, time.Time) {
	if ra := header.Get(HeaderRetryAfter); ra != "" {
		if seconds, err := strconv.Atoi(ra); err == nil && seconds > 0 {
			wait := time.Duration(seconds) * time.Second
			return wait, now.Add(wait)
		}
	}

	if reset := header.Get(HeaderRateReset); reset != "" {
		if epoch, err := strconv.ParseInt(reset, 10, 64); err == nil {
			resetAt := time.Unix(epoch, 0)
			if wait := resetAt.Sub(now); wait > 0 {
				return wait, resetAt
			}
			return 0, resetAt
		}
	}

	return 0, time.Time{}
}
