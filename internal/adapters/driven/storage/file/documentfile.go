// Package file reads and writes presentation files on the local filesystem.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
)

// Ensure DocumentFile implements the interface.
var _ driven.DocumentFile = (*DocumentFile)(nil)

// DocumentFile is the filesystem implementation of driven.DocumentFile.
// Writes go to a uniquely named temp file in the target directory which is
// synced and then renamed over the target.
type DocumentFile struct {
	perm os.FileMode
}

// NewDocumentFile creates a document file adapter writing files with mode 0644.
func NewDocumentFile() *DocumentFile {
	return &DocumentFile{perm: 0o644}
}

// ReadFile returns the contents of the file at path.
func (f *DocumentFile) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile atomically replaces the file at path with data.
func (f *DocumentFile) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, f.perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
