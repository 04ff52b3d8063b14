package gravatar

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	t.Run("tracks advertised quota headers", func(t *testing.T) {
		limiter := NewRateLimiter()

		header := http.Header{}
		header.Set(HeaderRateLimit, "1000")
		header.Set(HeaderRateRemaining, "997")
		header.Set(HeaderRateReset, "1700000000")
		limiter.UpdateFromResponse(&http.Response{Header: header})

		assert.Equal(t, 1000, limiter.Limit())
		assert.Equal(t, 997, limiter.Remaining())
		assert.Equal(t, time.Unix(1700000000, 0), limiter.ResetTime())
	})

	t.Run("ignores missing and malformed headers", func(t *testing.T) {
		limiter := NewRateLimiter()

		header := http.Header{}
		header.Set(HeaderRateRemaining, "not-a-number")
		limiter.UpdateFromResponse(&http.Response{Header: header})
		limiter.UpdateFromResponse(nil)

		assert.Equal(t, AnonymousRateLimit, limiter.Limit())
		assert.Equal(t, AnonymousRateLimit, limiter.Remaining())
		assert.True(t, limiter.ResetTime().IsZero())
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("first request passes immediately", func(t *testing.T) {
		limiter := NewRateLimiter()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx))
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		limiter := NewRateLimiter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, limiter.Wait(context.Background()))

		err := limiter.Wait(ctx)
		assert.Error(t, err)
	})
}

func TestRetryAfter(t *testing.T) {
	now := time.Unix(1700000000, 0)

	t.Run("Retry-After seconds wins", func(t *testing.T) {
		header := http.Header{}
		header.Set(HeaderRetryAfter, "120")
		header.Set(HeaderRateReset, strconv.FormatInt(now.Add(10*time.Second).Unix(), 10))

		wait, resetAt := retryAfter(header, now)

		assert.Equal(t, 120*time.Second, wait)
		assert.Equal(t, now.Add(120*time.Second), resetAt)
	})

	t.Run("falls back to the reset epoch", func(t *testing.T) {
		header := http.Header{}
		header.Set(HeaderRateReset, strconv.FormatInt(now.Add(90*time.Second).Unix(), 10))

		wait, resetAt := retryAfter(header, now)

		assert.Equal(t, 90*time.Second, wait)
		assert.Equal(t, now.Add(90*time.Second), resetAt)
	})

	t.Run("past reset epoch yields zero wait", func(t *testing.T) {
		header := http.Header{}
		header.Set(HeaderRateReset, strconv.FormatInt(now.Add(-time.Minute).Unix(), 10))

		wait, resetAt := retryAfter(header, now)

		assert.Zero(t, wait)
		assert.Equal(t, now.Add(-time.Minute), resetAt)
	})

	t.Run("no guidance headers yield zero values", func(t *testing.T) {
		wait, resetAt := retryAfter(http.Header{}, now)

		assert.Zero(t, wait)
		assert.True(t, resetAt.IsZero())
	})
}
