// Package fs provides filesystem adapters that implement cache store interfaces.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// OSReader implements cache.FileReader using os.ReadFile.
type OSReader struct{}

// ReadFileImpl reads the full content of the file at path. Errors are
// returned unwrapped so callers can test them with errors.Is(err, fs.ErrNotExist).
func (OSReader) ReadFileImpl(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadFile delegates to ReadFileImpl.
func (r OSReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return r.ReadFileImpl(ctx, path)
}

// OSWriter implements cache.FileWriter by writing a sibling temp file and
// renaming it over the target, so readers see either the old or the new
// content in full.
type OSWriter struct{}

// WriteFileImpl creates the parent directories of path as needed and
// replaces the file at path with data.
func (OSWriter) WriteFileImpl(_ context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// WriteFile delegates to WriteFileImpl.
func (w OSWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	return w.WriteFileImpl(ctx, path, data)
}
