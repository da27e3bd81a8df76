// Package fs provides the file system adapter used by the engine and the cache inspector.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem on the host file system.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Exists reports whether path exists.
func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
}

// ReadFile returns the contents of path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // paths come from the configured build root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// Glob returns the sorted, de-duplicated matches of pattern.
func (OSFS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}

	unique := make(map[string]struct{}, len(matches))
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, seen := unique[match]; seen {
			continue
		}
		unique[match] = struct{}{}
		result = append(result, match)
	}
	sort.Strings(result)

	return result, nil
}

// RemoveAll deletes path recursively. A missing path is not an error.
// It refuses empty paths and file system roots.
func (OSFS) RemoveAll(path string) error {
	if path == "" {
		return zerr.With(domain.ErrRefusingToWipe, "path", path)
	}
	clean := filepath.Clean(path)
	if clean == filepath.Dir(clean) || clean == "." {
		return zerr.With(domain.ErrRefusingToWipe, "path", path)
	}

	if err := os.RemoveAll(clean); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWipeFailed.Error()), "path", path)
	}
	return nil
}
