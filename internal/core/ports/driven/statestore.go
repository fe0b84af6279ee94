package driven

import "context"

// StateStore persists named blobs of session state on the local machine.
// The deck controller keeps the whole slide sequence under a single key.
type StateStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if nothing has been stored yet.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores or replaces the value under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
