package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

// mockFetcher implements ProfileFetcher with canned results and a call
// counter.
type mockFetcher struct {
	doc     *domain.ProfileDocument
	err     error
	fetches int
	lastKey string
}

func (m *mockFetcher) Fetch(_ context.Context, hash string) (*domain.ProfileDocument, error) {
	m.fetches++
	m.lastKey = hash
	return m.doc, m.err
}

func mustDocument(t *testing.T, body string) *domain.ProfileDocument {
	t.Helper()
	doc, err := domain.ParseProfileDocument([]byte(body))
	require.NoError(t, err)
	return doc
}

func emailQual(value string) []domain.Qual {
	return []domain.Qual{{Column: domain.KeyColumn, Operator: domain.OpEqual, Value: value}}
}

func TestScanService_Begin(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a single equality filter on email", func(t *testing.T) {
		fetcher := &mockFetcher{}
		scanner := NewScanService(fetcher, ProfilesTable)

		err := scanner.Begin(ctx, emailQual("user@example.com"), domain.Columns())

		require.NoError(t, err)
		assert.Zero(t, fetcher.fetches)
	})

	t.Run("rejects unknown tables", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "avatars")

		err := scanner.Begin(ctx, emailQual("user@example.com"), nil)

		assert.ErrorIs(t, err, domain.ErrUnsupportedTable)
	})

	t.Run("rejects two filters on the key column", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")
		quals := append(emailQual("a@example.com"), emailQual("b@example.com")...)

		err := scanner.Begin(ctx, quals, nil)

		assert.ErrorIs(t, err, domain.ErrUnsupportedPredicate)
	})

	t.Run("rejects non-equality operators", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")
		quals := []domain.Qual{{Column: domain.KeyColumn, Operator: domain.OpLike, Value: "%@example.com"}}

		err := scanner.Begin(ctx, quals, nil)

		assert.ErrorIs(t, err, domain.ErrUnsupportedPredicate)
	})

	t.Run("missing key filter begins an empty scan without error", func(t *testing.T) {
		fetcher := &mockFetcher{doc: mustDocument(t, `{"display_name": "X"}`)}
		scanner := NewScanService(fetcher, "")

		require.NoError(t, scanner.Begin(ctx, nil, nil))

		row, err := scanner.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Zero(t, fetcher.fetches)
	})
}

func TestScanService_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("yields exactly one row then exhaustion", func(t *testing.T) {
		fetcher := &mockFetcher{doc: mustDocument(t, `{"display_name": "Jane"}`)}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("Jane@Example.com "), nil))

		row, err := scanner.Next(ctx)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, gravatar.HashKey("jane@example.com"), row.Hash)
		assert.Equal(t, row.Hash, fetcher.lastKey)
		assert.Equal(t, "jane@example.com", row.Email)
		require.NotNil(t, row.DisplayName)
		assert.Equal(t, "Jane", *row.DisplayName)

		row, err = scanner.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)

		// Further calls stay exhausted without refetching.
		row, err = scanner.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Equal(t, 1, fetcher.fetches)
	})

	t.Run("absent profile yields zero rows without error", func(t *testing.T) {
		fetcher := &mockFetcher{}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("ghost@example.com"), nil))

		row, err := scanner.Next(ctx)

		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Equal(t, 1, fetcher.fetches)
	})

	t.Run("fetch error surfaces once then the scan is exhausted", func(t *testing.T) {
		fetcher := &mockFetcher{err: domain.ErrTransient}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("user@example.com"), nil))

		_, err := scanner.Next(ctx)
		assert.ErrorIs(t, err, domain.ErrTransient)

		row, err := scanner.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Equal(t, 1, fetcher.fetches)
	})

	t.Run("before Begin", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")

		_, err := scanner.Next(ctx)

		assert.ErrorIs(t, err, domain.ErrScanNotStarted)
	})

	t.Run("after End", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("user@example.com"), nil))
		scanner.End()

		_, err := scanner.Next(ctx)

		assert.ErrorIs(t, err, domain.ErrScanEnded)
	})
}

func TestScanService_Restart(t *testing.T) {
	ctx := context.Background()

	t.Run("refetches and reproduces the row", func(t *testing.T) {
		fetcher := &mockFetcher{doc: mustDocument(t, `{"display_name": "Jane"}`)}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("jane@example.com"), nil))

		first, err := scanner.Next(ctx)
		require.NoError(t, err)
		require.NotNil(t, first)

		require.NoError(t, scanner.Restart())

		second, err := scanner.Next(ctx)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.Hash, second.Hash)
		assert.Equal(t, 2, fetcher.fetches)
	})

	t.Run("keyless scan stays empty after restart", func(t *testing.T) {
		fetcher := &mockFetcher{doc: mustDocument(t, `{}`)}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(ctx, nil, nil))

		require.NoError(t, scanner.Restart())

		row, err := scanner.Next(ctx)
		require.NoError(t, err)
		assert.Nil(t, row)
		assert.Zero(t, fetcher.fetches)
	})

	t.Run("before Begin", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")

		assert.ErrorIs(t, scanner.Restart(), domain.ErrScanNotStarted)
	})

	t.Run("after End", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")
		require.NoError(t, scanner.Begin(ctx, emailQual("user@example.com"), nil))
		scanner.End()

		assert.ErrorIs(t, scanner.Restart(), domain.ErrScanEnded)
	})
}

func TestScanService_End(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		scanner := NewScanService(&mockFetcher{}, "")
		require.NoError(t, scanner.Begin(context.Background(), emailQual("user@example.com"), nil))

		scanner.End()
		scanner.End()

		_, err := scanner.Next(context.Background())
		assert.ErrorIs(t, err, domain.ErrScanEnded)
	})
}

func TestScanService_ErrorPassthrough(t *testing.T) {
	t.Run("custom fetch errors pass through unwrapped", func(t *testing.T) {
		sentinel := errors.New("upstream exploded")
		fetcher := &mockFetcher{err: sentinel}
		scanner := NewScanService(fetcher, "")
		require.NoError(t, scanner.Begin(context.Background(), emailQual("user@example.com"), nil))

		_, err := scanner.Next(context.Background())

		assert.ErrorIs(t, err, sentinel)
	})
}
