package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
)

// stateStore implements driven.StateStore on the state table.
type stateStore struct {
	store *Store
}

var _ driven.StateStore = (*stateStore)(nil)

// Get returns the value stored under key.
func (s *stateStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.store.db.QueryRowContext(ctx,
		"SELECT value FROM state WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: state %q", domain.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("querying state %q: %w", key, err)
	}
	return value, nil
}

// Put stores or replaces the value under key.
func (s *stateStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("saving state %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key.
func (s *stateStore) Delete(ctx context.Context, key string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM state WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting state %q: %w", key, err)
	}
	return nil
}
