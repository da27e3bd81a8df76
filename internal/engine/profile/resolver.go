// Package profile maps profile keys to their build directories.
package profile

import (
	"path/filepath"

	"go.trai.ch/cptools/internal/core/domain"
)

// Resolver places one directory per profile key under a build root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at root.
func NewResolver(root string) *Resolver {
	return &Resolver{root: filepath.Clean(root)}
}

// Key derives the profile key of a toolchain descriptor and build type.
func Key(desc domain.ToolchainDescriptor, buildType domain.BuildType) (domain.ProfileKey, error) {
	return domain.NewProfileKey(desc.Family, buildType)
}

// Resolve returns the directory of key. It does not create it.
func (r *Resolver) Resolve(key domain.ProfileKey) string {
	return filepath.Join(r.root, key.DirName())
}

// Root returns the build root.
func (r *Resolver) Root() string {
	return r.root
}
