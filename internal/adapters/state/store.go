// Package state records fingerprints of written pin files.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PinStateStore using a file-per-output strategy.
type Store struct{}

// NewStore creates a new PinStateStore. All operations take an explicit root.
func NewStore() *Store {
	return &Store{}
}

// Fingerprint returns the xxhash64 of rendered pin file content as hex.
func Fingerprint(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Get retrieves the pin state for an output path.
func (s *Store) Get(root, output string) (*domain.PinState, error) {
	filename := s.getFilename(root, output)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStateReadFailed.Error())
	}

	var state domain.PinState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateUnmarshalFailed.Error()), "path", filename)
	}

	return &state, nil
}

// Put stores the pin state, keyed by its output path.
func (s *Store) Put(root string, state domain.PinState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateMarshalFailed.Error())
	}

	filename := s.getFilename(root, state.Output)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStateCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, output string) string {
	hash := sha256.Sum256([]byte(output))
	return filepath.Join(root, domain.DefaultPinStatePath(), hex.EncodeToString(hash[:])+".json")
}
