package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingKeyFilter indicates the host pushed down no filter on the
	// key column. Recovered locally: the scan yields zero rows, not a
	// query error.
	ErrMissingKeyFilter = errors.New("no email filter provided")

	// ErrUnsupportedPredicate indicates the pushed-down filter cannot be
	// answered safely as a single-key lookup (IN-list, OR of equalities,
	// or a non-equality operator on the key column). Surfaced as a query
	// error rather than risking a silent full scan.
	ErrUnsupportedPredicate = errors.New("unsupported predicate")

	// ErrUnsupportedTable indicates a table other than profiles was requested.
	ErrUnsupportedTable = errors.New("unsupported table")

	// ErrAuth indicates the upstream rejected the credential.
	// Never retried.
	ErrAuth = errors.New("authentication failed")

	// ErrParse indicates the upstream returned a 2xx response with a body
	// that is not a valid profile document. Treated as a hard failure.
	ErrParse = errors.New("malformed profile document")

	// ErrTransient indicates transient upstream failures (timeouts, 5xx)
	// exhausted the retry budget.
	ErrTransient = errors.New("transient upstream failure")

	// ErrSecretNotFound indicates a configured secret reference could not
	// be resolved. A fatal configuration error: lookups must not degrade
	// silently to anonymous access.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrScanNotStarted indicates Next was called before Begin.
	ErrScanNotStarted = errors.New("scan not started")

	// ErrScanEnded indicates the scan was already ended.
	ErrScanEnded = errors.New("scan ended")
)
