package domain

import (
	"path/filepath"
	"strings"
)

// CompilerFamily identifies a compiler toolchain.
type CompilerFamily string

const (
	// FamilyGCC is the GNU compiler collection.
	FamilyGCC CompilerFamily = "gcc"
	// FamilyClang is LLVM Clang, including AppleClang.
	FamilyClang CompilerFamily = "clang"
)

// Valid reports whether f is a known compiler family.
func (f CompilerFamily) Valid() bool {
	return f == FamilyGCC || f == FamilyClang
}

// ToolchainFileName returns the base name of the toolchain definition file for f.
func (f CompilerFamily) ToolchainFileName() string {
	return string(f) + "-toolchain.cmake"
}

// Selection reasons recorded on a ToolchainDescriptor.
const (
	ReasonForced            = "forced"
	ReasonDefault           = "default"
	ReasonAutoSelected      = "auto-selected"
	ReasonSanitizersOnClang = "auto-selected for sanitizers"
)

// ToolchainDescriptor is the resolved toolchain for a request.
type ToolchainDescriptor struct {
	Family CompilerFamily
	Reason string
	// File is the toolchain definition file the generator must be pointed at.
	File string
}

// FileBase returns the base name of the toolchain file.
func (d ToolchainDescriptor) FileBase() string {
	return filepath.Base(d.File)
}

// FamilyFromCompilerID maps a CMake CMAKE_<LANG>_COMPILER_ID value to a family.
func FamilyFromCompilerID(id string) (CompilerFamily, bool) {
	switch strings.TrimSpace(id) {
	case "GNU":
		return FamilyGCC, true
	case "Clang", "AppleClang":
		return FamilyClang, true
	default:
		return "", false
	}
}

// InferFamilyFromPath guesses the family from a compiler executable path.
// Caches written before the compiler id was recorded only carry the path,
// so this substring match is kept for them.
func InferFamilyFromPath(path string) (CompilerFamily, bool) {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == "" || base == ".":
		return "", false
	case strings.Contains(base, "clang"):
		return FamilyClang, true
	case strings.Contains(base, "g++"), strings.Contains(base, "gcc"):
		return FamilyGCC, true
	default:
		return "", false
	}
}
