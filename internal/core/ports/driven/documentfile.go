package driven

import "context"

// DocumentFile reads and writes whole presentation files chosen by the user.
type DocumentFile interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the file at path with data. Writers must never leave
	// a partially written file behind.
	WriteFile(ctx context.Context, path string, data []byte) error
}
