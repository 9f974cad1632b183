// Package store implements the JSON-file document store.  The whole
// application state lives in a single document (users, cases,
// subscriptions) that is read fully, mutated in memory and written
// back fully on every change.  A mutex serialises each
// load-modify-save cycle: Go's HTTP server handles requests
// concurrently and the file format has no notion of a partial
// update, so without the lock a second writer would silently discard
// the first writer's change.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/solicare/donation-board/internal/model"
)

// Store provides serialised access to the persisted document.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store backed by the file at path.  A missing file
// is treated as an empty document; an existing but unreadable or
// unparseable file is an error, so the process refuses to start
// serving on top of a presumed-empty, actually-broken store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	s := &Store{path: path}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// load reads and decodes the document.  Callers must hold the mutex
// (or be in Open, before the store is shared).
func (s *Store) load() (model.Document, error) {
	var doc model.Document
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc.Normalize()
			return doc, nil
		}
		return doc, fmt.Errorf("read store %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode store %s: %w", s.path, err)
	}
	doc.Normalize()
	return doc, nil
}

// save encodes the document and overwrites the backing file.  The
// write goes through a temp file and rename so a crash mid-write
// cannot leave a truncated document behind.
func (s *Store) save(doc model.Document) error {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store %s: %w", s.path, err)
	}
	return nil
}

// View runs fn with a freshly loaded copy of the document.  Changes
// made by fn are discarded; use Update for mutations.
func (s *Store) View(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(&doc)
}

// Update runs fn with the current document and persists the result.
// The mutex is held across the whole load-modify-save cycle so that
// concurrent mutations cannot interleave.  If fn returns an error the
// document is not written.
func (s *Store) Update(fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.save(doc)
}
