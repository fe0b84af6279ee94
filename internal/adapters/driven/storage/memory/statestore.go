package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.StateStore.
// State lives for the lifetime of the process.
type StateStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key.
func (s *StateStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: state %q", domain.ErrNotFound, key)
	}
	return append([]byte(nil), val...), nil
}

// Put stores a copy of value under key.
func (s *StateStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes the value under key.
func (s *StateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
