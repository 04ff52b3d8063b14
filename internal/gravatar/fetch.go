package gravatar

import (
	"context"
	"io"
	"time"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driven"
	"github.com/custodia-labs/gravatar-fdw/internal/logger"
)

// maxBodySize caps response body reads. Profile documents are small;
// anything larger is not one.
const maxBodySize = 4 << 20

// Fetcher performs one profile fetch per call, driving the request
// builder, transport and retry policy. Backoff delays block the calling
// goroutine; there is no concurrent fan-out of retries.
type Fetcher struct {
	builder   *RequestBuilder
	transport driven.Transport
	policy    RetryPolicy
	limiter   *RateLimiter
}

// NewFetcher wires a fetcher from its collaborators.
func NewFetcher(builder *RequestBuilder, transport driven.Transport, policy RetryPolicy) *Fetcher {
	return &Fetcher{
		builder:   builder,
		transport: transport,
		policy:    policy,
		limiter:   NewRateLimiter(),
	}
}

// Fetch retrieves the profile document addressed by hash.
// Returns (nil, nil) when the profile is private or does not exist.
func (f *Fetcher) Fetch(ctx context.Context, hash string) (*domain.ProfileDocument, error) {
	for attempt := 1; ; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		outcome := f.attempt(ctx, hash)
		decision, delay, err := f.policy.Decide(attempt, outcome)

		switch decision {
		case DecisionSucceed:
			doc, parseErr := domain.ParseProfileDocument(outcome.Body)
			if parseErr != nil {
				return nil, parseErr
			}
			return doc, nil

		case DecisionNotFound:
			logger.Info("profile not found for hash %s", hash)
			return nil, nil

		case DecisionRetry:
			logger.Debug("attempt %d failed (status %d, err %v), retrying in %s",
				attempt, outcome.StatusCode, outcome.Err, delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}

		default:
			return nil, err
		}
	}
}

// attempt performs a single request and collapses it into an Outcome.
func (f *Fetcher) attempt(ctx context.Context, hash string) Outcome {
	req, err := f.builder.Build(ctx, hash)
	if err != nil {
		return Outcome{Err: err}
	}

	resp, err := f.transport.Do(req)
	if err != nil {
		return Outcome{Err: err, URL: req.URL.String()}
	}
	defer resp.Body.Close()

	f.limiter.UpdateFromResponse(resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Outcome{Err: err, URL: req.URL.String()}
	}

	return Outcome{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		URL:        req.URL.String(),
	}
}
