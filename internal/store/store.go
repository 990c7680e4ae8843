package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nao1215/neodynium/internal/model"
)

// Kind names a persisted collection.
type Kind string

const (
	// KindBookmarks is the bookmark list.
	KindBookmarks Kind = "bookmarks"
	// KindHistory is the history list.
	KindHistory Kind = "history"
)

// FileName returns the file the kind is stored in.
func (k Kind) FileName() string {
	return string(k) + ".json"
}

// Store reads and writes the JSON collections under one directory.
type Store struct {
	dir    string
	logger *slog.Logger

	// mu serializes writes to the data directory.
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, kind.FileName())
}

// LoadBookmarks replaces *into with the stored bookmarks.
// A missing or unreadable file leaves *into unchanged.
func (s *Store) LoadBookmarks(into *model.Bookmarks) {
	load(s, KindBookmarks, into)
}

// SaveBookmarks writes the bookmark list.
func (s *Store) SaveBookmarks(bookmarks model.Bookmarks) {
	if bookmarks == nil {
		bookmarks = model.Bookmarks{}
	}
	save(s, KindBookmarks, bookmarks)
}

// LoadHistory replaces *into with the stored history.
// A missing or unreadable file leaves *into unchanged.
func (s *Store) LoadHistory(into *model.History) {
	load(s, KindHistory, into)
}

// SaveHistory writes the history list.
func (s *Store) SaveHistory(history model.History) {
	if history == nil {
		history = model.History{}
	}
	save(s, KindHistory, history)
}

// load decodes the file for kind into *into. Decoding happens into a
// temporary value first so a parse failure cannot leave partial data.
func load[T any](s *Store, kind Kind, into *T) {
	path := s.Path(kind)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the data directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no stored data", "kind", string(kind), "path", path)
			return
		}
		s.logger.Error("failed to read stored data", "kind", string(kind), "path", path, "error", err)
		return
	}

	var tmp T
	if err := json.Unmarshal(data, &tmp); err != nil {
		s.logger.Error("failed to parse stored data", "kind", string(kind), "path", path, "error", err)
		return
	}
	*into = tmp
}

// save encodes v and writes it for kind. Failures are logged.
func save[T any](s *Store, kind Kind, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(kind, v); err != nil {
		s.logger.Error("failed to save data", "kind", string(kind), "path", s.Path(kind), "error", err)
		return
	}
	s.logger.Debug("data saved", "kind", string(kind))
}

func (s *Store) write(kind Kind, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+string(kind)+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path(kind)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", kind.FileName(), err)
	}
	return nil
}
