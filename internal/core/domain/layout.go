package domain

import (
	"path/filepath"
	"strings"
)

const (
	// StateDirName is the name of the per-project metadata directory.
	StateDirName = ".cptools"

	// StateFileName is the name of the persisted configuration record.
	StateFileName = "config_state"

	// ActiveFileName is the name of the active profile marker.
	ActiveFileName = "active_build"

	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = ".cptools.yaml"

	// DefaultBuildRoot is the directory holding one subdirectory per profile.
	DefaultBuildRoot = "build"

	// ToolchainDirName is the directory under the tools root holding toolchain files.
	ToolchainDirName = "cmake"

	// DefaultGenerator is the build generator binary.
	DefaultGenerator = "cmake"

	// DefaultPCHCleanTarget is the generator target that drops precompiled headers.
	DefaultPCHCleanTarget = "pch_clean"

	// CMakeCacheFile is the generator's primary cache file inside a profile directory.
	CMakeCacheFile = "CMakeCache.txt"

	// CMakeFilesDir holds the generator's internal per-version records.
	CMakeFilesDir = "CMakeFiles"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the persisted record path relative to the project.
// It joins .cptools and config_state.
func DefaultStatePath() string {
	return filepath.Join(StateDirName, StateFileName)
}

// DefaultActivePath returns the active profile marker path relative to the project.
// It joins .cptools and active_build.
func DefaultActivePath() string {
	return filepath.Join(StateDirName, ActiveFileName)
}

// ToolchainFilePath returns where the toolchain file for family lives under toolsRoot.
func ToolchainFilePath(toolsRoot string, family CompilerFamily) string {
	return filepath.Join(toolsRoot, ToolchainDirName, family.ToolchainFileName())
}

// PathContains reports whether path is dir itself or lies below it.
// Both paths must be absolute.
func PathContains(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
