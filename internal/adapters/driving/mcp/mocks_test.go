package mcp

import (
	"context"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
)

// mockScanner is a mock implementation of driving.ProfileScanner.
type mockScanner struct {
	beginErr error
	row      *domain.Row
	nextErr  error

	served bool
	ended  bool
}

var _ driving.ProfileScanner = (*mockScanner)(nil)

func (m *mockScanner) Begin(_ context.Context, _ []domain.Qual, _ []string) error {
	return m.beginErr
}

func (m *mockScanner) Next(_ context.Context) (*domain.Row, error) {
	if m.nextErr != nil {
		return nil, m.nextErr
	}
	if m.served {
		return nil, nil
	}
	m.served = true
	return m.row, nil
}

func (m *mockScanner) Restart() error {
	m.served = false
	return nil
}

func (m *mockScanner) End() {
	m.ended = true
}

func scannerPorts(scanner *mockScanner) *Ports {
	return &Ports{
		NewScanner: func() (driving.ProfileScanner, error) {
			return scanner, nil
		},
	}
}
