// Package store persists form state as a single JSON file. The contract is
// deliberately small: Load at session start, Save after every accepted
// mutation, last write wins. Nothing in the core depends on whether a save
// succeeded.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jerops/prd-generator/internal/form"
)

// ErrNoState means no saved state exists yet. Callers surface it as an
// informational condition, not a failure.
var ErrNoState = errors.New("no saved state")

// Store reads and writes form state at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Path() string { return st.path }

// Load reads the saved state. A missing file returns ErrNoState with fresh
// defaults; a malformed file also returns defaults, with a wrapped parse
// error the caller may surface as a warning. Neither case loses the ability
// to continue.
func (st *Store) Load() (form.State, error) {
	raw, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return form.NewState(), ErrNoState
		}
		return form.NewState(), fmt.Errorf("read state: %w", err)
	}
	var s form.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return form.NewState(), fmt.Errorf("saved state unreadable, starting fresh: %w", err)
	}
	return s.Normalize(), nil
}

// Save writes the full state, creating the parent directory on first use.
// The write goes through a temp file and rename so a crash never leaves a
// half-written state behind.
func (st *Store) Save(s form.State) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// Reset removes the saved state. Missing state is not an error.
func (st *Store) Reset() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state: %w", err)
	}
	return nil
}
