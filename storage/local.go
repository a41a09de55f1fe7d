package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local stores photos in a server-local directory, the one gin also serves
// under /uploads.
type Local struct {
	root     string
	maxBytes int64
}

func NewLocal(root string, maxUploadMB int64) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: could not create uploads dir %s: %w", root, err)
	}
	return &Local{root: root, maxBytes: maxUploadMB * 1024 * 1024}, nil
}

func (s *Local) Save(ctx context.Context, filename string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validName(filename) {
		return fmt.Errorf("storage: invalid filename %q", filename)
	}

	targetPath := filepath.Join(s.root, filename)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("storage: could not create file: %w", err)
	}
	defer f.Close()

	limited := io.LimitedReader{R: r, N: s.maxBytes + 1}
	written, err := io.Copy(f, &limited)
	if err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("storage: write failed: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(tempPath)
		return fmt.Errorf("storage: file exceeds %d byte limit", s.maxBytes)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("storage: close failed: %w", err)
	}

	// Rename so a half-written file is never visible under /uploads.
	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("storage: rename failed: %w", err)
	}
	return nil
}

func (s *Local) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(filename) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.root, filename))
}

func (s *Local) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validName(filename) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.root, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: could not delete file: %w", err)
	}
	return nil
}
