package driving

import (
	"context"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
)

// ProfileScanner is the per-query iterator protocol a host drives:
// Begin, then Next repeatedly, optionally Restart, and End.
//
// A scanner is exclusively owned by one scan invocation. Calls are
// synchronous and single-threaded; the only blocking operation is the
// fetch performed by the first Next, which may block across retry
// attempts.
type ProfileScanner interface {
	// Begin validates the pushed-down conditions and prepares the scan.
	// An unanswerable predicate fails fast; a missing key filter is
	// recovered locally so the scan yields zero rows without error.
	// columns is the host's projection; the full row is computed
	// regardless.
	Begin(ctx context.Context, quals []domain.Qual, columns []string) error

	// Next returns the next row, or nil when the scan is exhausted.
	// At most one row is ever produced per scan.
	Next(ctx context.Context) (*domain.Row, error)

	// Restart resets the scan for re-execution (e.g. nested-loop joins),
	// discarding any fetched document. The predicate is not re-validated;
	// the next Next performs a fresh fetch.
	Restart() error

	// End releases the scan state. Idempotent.
	End()
}
