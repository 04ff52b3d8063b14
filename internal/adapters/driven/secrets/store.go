// Package secrets provides a SQLite-backed secret store for API
// credentials referenced by ID from the configuration.
package secrets

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
	"github.com/custodia-labs/gravatar-fdw/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SecretStore = (*Store)(nil)

// schema is applied at open. A single table keeps migrations trivial.
const schema = `
	CREATE TABLE IF NOT EXISTS secrets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		value      TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)
`

// Store persists secrets in a local SQLite database and resolves them by
// opaque reference ID.
type Store struct {
	db   *sql.DB
	path string
}

// SecretRef describes a stored secret without exposing its value.
type SecretRef struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NewStore creates a secret store at the specified data directory.
// If dataDir is empty, defaults to ~/.gravatar-fdw/data/secrets.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".gravatar-fdw", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "secrets.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Resolve returns the secret value for ref.
func (s *Store) Resolve(ctx context.Context, ref string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM secrets WHERE id = ?", ref).Scan(&value)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("resolving secret: %w", err)
	}
	return value, nil
}

// Put stores a named secret and returns its reference ID.
func (s *Store) Put(ctx context.Context, name, value string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO secrets (id, name, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, value, now, now)
	if err != nil {
		return "", fmt.Errorf("saving secret: %w", err)
	}

	return id, nil
}

// Delete removes a secret by reference ID.
func (s *Store) Delete(ctx context.Context, ref string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM secrets WHERE id = ?", ref)
	if err != nil {
		return fmt.Errorf("deleting secret: %w", err)
	}
	return nil
}

// List returns references to all stored secrets, values excluded.
func (s *Store) List(ctx context.Context) ([]SecretRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM secrets ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying secrets: %w", err)
	}
	defer rows.Close()

	var refs []SecretRef //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ref SecretRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning secret: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating secrets: %w", err)
	}

	return refs, nil
}
