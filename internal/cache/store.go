// Package cache persists the emoji catalog to a single JSON file and refreshes
// it from the remote catalog when the file is missing.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/eykd/gh-emoji/internal/domain"
	"github.com/eykd/gh-emoji/internal/logx"
)

// CacheError reports a filesystem or serialization failure on the cache file.
type CacheError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CacheError) Unwrap() error {
	return e.Err
}

// Fetcher abstracts retrieval of a fresh catalog.
type Fetcher interface {
	Fetch(ctx context.Context) (domain.Catalog, error)
}

// FileReader abstracts reading the cache file. A missing file must be
// reported with an error matching fs.ErrNotExist.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter abstracts replacing the cache file in full.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// DefaultPath returns <home>/.cache/gh-emoji/emojis.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "gh-emoji", "emojis.json"), nil
}

// Store owns the cache file at a fixed path.
type Store struct {
	path    string
	fetcher Fetcher
	reader  FileReader
	writer  FileWriter
}

// NewStore creates a Store for the cache file at path.
func NewStore(path string, fetcher Fetcher, reader FileReader, writer FileWriter) *Store {
	return &Store{
		path:    path,
		fetcher: fetcher,
		reader:  reader,
		writer:  writer,
	}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached catalog in stored order. When the cache file does
// not exist it refreshes from the remote catalog instead; any other read
// failure is returned as a *CacheError.
func (s *Store) Load(ctx context.Context) (domain.Catalog, error) {
	log := logx.Ctx(ctx).With("path", s.path)

	data, err := s.reader.ReadFile(ctx, s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		log.Debug("cache miss")
		return s.Refresh(ctx)
	}
	if err != nil {
		return nil, &CacheError{Op: "read", Path: s.path, Err: err}
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &CacheError{Op: "decode", Path: s.path, Err: err}
	}
	if catalog == nil {
		catalog = domain.Catalog{}
	}
	log.Debug("cache hit", "icons", len(catalog))
	return catalog, nil
}

// Refresh fetches the remote catalog and replaces the cache file with it.
func (s *Store) Refresh(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, &CacheError{Op: "encode", Path: s.path, Err: err}
	}
	if err := s.writer.WriteFile(ctx, s.path, data); err != nil {
		return nil, &CacheError{Op: "write", Path: s.path, Err: err}
	}
	logx.Ctx(ctx).Debug("cache written", "path", s.path, "icons", len(catalog))
	return catalog, nil
}
