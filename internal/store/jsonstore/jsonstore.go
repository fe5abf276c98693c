package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/spinwheel/internal/log"
)

// JSON-backed key-value storage: one file per named slot in a directory.
// No locking; a local single-user tool.

// ItemsSlot is the slot holding the wheel's labels.
const ItemsSlot = "wheelItems"

// Store reads and writes one named slot as a JSON array of strings.
type Store struct {
	Dir  string
	Slot string
}

// New returns a store for the wheel items slot under dir.
func New(dir string) *Store {
	return &Store{Dir: dir, Slot: ItemsSlot}
}

// Path is the file backing the slot.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, s.Slot+".json")
}

// Load returns the persisted labels. A missing slot is an empty list.
// Malformed content is logged and also treated as an empty list.
func (s *Store) Load() ([]string, error) {
	p := s.Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var labels []string
	if err := json.Unmarshal(b, &labels); err != nil {
		log.Warn("ignoring malformed slot %s: %v", p, err)
		return []string{}, nil
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}

// Save replaces the slot content. The write goes through a temp file and a
// rename so a crash never leaves a half-written slot behind.
func (s *Store) Save(labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.MarshalIndent(labels, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, s.Slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
