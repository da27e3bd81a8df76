// Package state persists the last successful configuration and the active profile pointer.
package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore with two one-line files under the project's .cptools directory.
type Store struct {
	mu         sync.Mutex
	statePath  string
	activePath string
}

// NewStore creates a Store rooted at projectDir.
func NewStore(projectDir string) *Store {
	return &Store{
		statePath:  filepath.Join(projectDir, domain.DefaultStatePath()),
		activePath: filepath.Join(projectDir, domain.DefaultActivePath()),
	}
}

// Load returns the persisted configuration, or nil if none was saved.
func (s *Store) Load() (*domain.ConfigState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok, err := readLine(s.statePath)
	if err != nil || !ok {
		return nil, err
	}

	st, err := domain.DecodeConfigState(line)
	if err != nil {
		return nil, zerr.With(err, "path", s.statePath)
	}
	return &st, nil
}

// Save replaces the persisted configuration.
func (s *Store) Save(st domain.ConfigState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeLine(s.statePath, st.Encode())
}

// Active returns the active profile directory, or "" if none.
func (s *Store) Active() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, _, err := readLine(s.activePath)
	return line, err
}

// SetActive replaces the active profile pointer.
func (s *Store) SetActive(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir == "" {
		return zerr.With(domain.ErrInvalidArgument, "active_build", dir)
	}
	return writeLine(s.activePath, dir)
}

// Clear removes the persisted configuration and the active pointer.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range []string{s.activePath, s.statePath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
		}
	}
	return nil
}

// readLine returns the first line of path. ok is false when the file is missing or blank.
func readLine(path string) (line string, ok bool, err error) {
	//nolint:gosec // path is derived from the project directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}

	line, _, _ = strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	return line, line != "", nil
}

// writeLine replaces path with line via a temp file in the same directory and a rename.
func writeLine(path, line string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(line + "\n"); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	return nil
}
