// Package store persists each logical collection as a single named JSON
// document on disk. Callers follow a load-mutate-save cycle; the store
// offers no cross-call atomicity, so concurrent writers to the same
// document are last-write-wins.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory documents are stored under.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Exists reports whether a document has ever been saved.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Load reads a named document. A missing, empty, or unreadable document
// yields def; parse failures are swallowed, never returned to the caller.
func Load[T any](s *Store, name string, def T) T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return def
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return def
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Debug("discarding malformed document", "name", name, "error", err)
		return def
	}
	return doc
}

// Save serializes the full document and replaces the file. The document
// is written to a temp file and renamed into place so an interrupted
// save never leaves a half-written file behind.
func Save[T any](s *Store, name string, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
