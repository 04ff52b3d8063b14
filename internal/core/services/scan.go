package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
	"github.com/custodia-labs/gravatar-fdw/internal/logger"
)

// ProfilesTable is the only table this adapter serves.
const ProfilesTable = "profiles"

// ProfileFetcher fetches one profile document per address hash.
// Returns (nil, nil) when the profile is absent.
type ProfileFetcher interface {
	Fetch(ctx context.Context, hash string) (*domain.ProfileDocument, error)
}

// scanPhase is the scan's position in its lifecycle.
type scanPhase int

const (
	phaseCreated scanPhase = iota
	phaseFetching
	phaseRowReady
	phaseExhausted
	phaseEnded
)

// Ensure ScanService implements the driving port.
var _ driving.ProfileScanner = (*ScanService)(nil)

// ScanService is the per-query scan state machine. Each instance is
// exclusively owned by one scan invocation; calls are single-threaded
// and synchronous.
type ScanService struct {
	fetcher ProfileFetcher
	table   string

	phase  scanPhase
	scanID string
	key    domain.LookupKey
	hash   string
	row    *domain.Row
}

// NewScanService creates a scanner for the given table backed by fetcher.
func NewScanService(fetcher ProfileFetcher, table string) *ScanService {
	if table == "" {
		table = ProfilesTable
	}
	return &ScanService{
		fetcher: fetcher,
		table:   table,
	}
}

// Begin validates the pushed-down conditions and computes the address
// hash. An unsupported predicate fails fast; a missing key filter moves
// straight to exhausted so the scan yields zero rows without error.
// The columns argument is the host's projection and does not affect what
// is computed.
func (s *ScanService) Begin(ctx context.Context, quals []domain.Qual, _ []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.scanID = uuid.NewString()
	s.row = nil
	s.key = ""
	s.hash = ""

	if s.table != ProfilesTable {
		return fmt.Errorf("%w: %q, only %q is supported", domain.ErrUnsupportedTable, s.table, ProfilesTable)
	}

	key, err := domain.ExtractLookupKey(quals)
	if err != nil {
		if errors.Is(err, domain.ErrMissingKeyFilter) {
			logger.Info("scan %s: no email filter provided, yielding empty result (requires email = '...' in WHERE clause)", s.scanID)
			s.phase = phaseExhausted
			return nil
		}
		return err
	}

	s.key = key
	s.hash = gravatar.HashKey(string(key))
	s.phase = phaseFetching

	logger.Debug("scan %s: begin, hash %s", s.scanID, s.hash)
	return nil
}

// Next produces the scan's single row on the first call after Begin,
// then reports exhaustion. The first call performs the fetch
// synchronously, blocking across retry attempts.
func (s *ScanService) Next(ctx context.Context) (*domain.Row, error) {
	switch s.phase {
	case phaseCreated:
		return nil, domain.ErrScanNotStarted
	case phaseEnded:
		return nil, domain.ErrScanEnded
	case phaseRowReady:
		// The single row was already served.
		s.phase = phaseExhausted
		s.row = nil
		return nil, nil
	case phaseExhausted:
		return nil, nil
	}

	doc, err := s.fetcher.Fetch(ctx, s.hash)
	if err != nil {
		s.phase = phaseExhausted
		logger.Error("scan %s: %v", s.scanID, err)
		return nil, err
	}

	row := gravatar.MapProfile(doc, s.key, s.hash)
	if row == nil {
		s.phase = phaseExhausted
		return nil, nil
	}

	s.phase = phaseRowReady
	s.row = row
	return row, nil
}

// Restart resets the scan for re-execution without re-validating the
// predicate. Any fetched document is discarded; the next Next performs a
// fresh fetch. A scan that began without a key filter stays exhausted.
func (s *ScanService) Restart() error {
	switch s.phase {
	case phaseCreated:
		return domain.ErrScanNotStarted
	case phaseEnded:
		return domain.ErrScanEnded
	}

	s.row = nil
	if s.key == "" {
		s.phase = phaseExhausted
	} else {
		s.phase = phaseFetching
	}

	logger.Debug("scan %s: restart", s.scanID)
	return nil
}

// End releases the scan state. Idempotent; safe to call at any point in
// the lifecycle.
func (s *ScanService) End() {
	s.phase = phaseEnded
	s.key = ""
	s.hash = ""
	s.row = nil
}
