package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/todosh/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking for v1; fine for a local single-user CLI.

// ErrCorrupt marks a data file that exists but cannot be parsed. Callers
// that want fail-open behavior (start empty, keep running) match on it with
// errors.Is; everything else is a real I/O failure.
var ErrCorrupt = errors.New("data file corrupt")

// Store reads and writes the full item collection at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the whole collection. A missing file is an empty collection,
// not an error. An unparseable file returns an empty collection together
// with an error wrapping ErrCorrupt.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return []model.Item{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Save rewrites the whole file from the given collection. Overwrite in
// place, no rename step; single-writer local files don't need more.
func (s *Store) Save(items []model.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
