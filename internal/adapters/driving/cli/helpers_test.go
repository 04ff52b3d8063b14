package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gravatar-fdw/internal/adapters/driven/secrets"
	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driving"
	"github.com/custodia-labs/gravatar-fdw/internal/gravatar"
)

// mockScanner implements driving.ProfileScanner with a canned row.
type mockScanner struct {
	beginErr error
	row      *domain.Row
	nextErr  error

	begun  bool
	served bool
	ended  bool
}

func (m *mockScanner) Begin(_ context.Context, _ []domain.Qual, _ []string) error {
	m.begun = true
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

func testRow() *domain.Row {
	name := "Jane Doe"
	url := "https://gravatar.com/janedoe"
	return &domain.Row{
		Hash:        gravatar.HashKey("jane@example.com"),
		Email:       "jane@example.com",
		DisplayName: &name,
		ProfileURL:  &url,
		Document:    json.RawMessage(`{"display_name": "Jane Doe"}`),
	}
}

// setupTestServices wires mock services into the package-level variables
// and returns a cleanup that restores the previous state.
func setupTestServices(t *testing.T, scanner *mockScanner) func() {
	t.Helper()

	oldNewScanner := newScanner
	oldSecretStore := secretStore
	oldConfigStore := configStore

	store, err := secrets.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating secret store: %v", err)
	}
	cfg, err := file.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating config store: %v", err)
	}

	SetServices(
		func() (driving.ProfileScanner, error) { return scanner, nil },
		store,
		cfg,
	)

	return func() {
		newScanner = oldNewScanner
		secretStore = oldSecretStore
		configStore = oldConfigStore
		_ = store.Close()
	}
}
