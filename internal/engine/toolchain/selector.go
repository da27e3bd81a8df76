// Package toolchain decides which compiler toolchain a request is built with.
package toolchain

import (
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector resolves toolchain descriptors against the toolchain files under a tools root.
type Selector struct {
	fs        ports.FileSystem
	toolsRoot string
	platform  domain.Platform
}

// NewSelector creates a Selector for the given tools root and host platform.
func NewSelector(fs ports.FileSystem, toolsRoot string, platform domain.Platform) *Selector {
	return &Selector{
		fs:        fs,
		toolsRoot: toolsRoot,
		platform:  platform,
	}
}

// Select picks the toolchain for a build type and compiler preference.
// The toolchain definition file must exist.
func (s *Selector) Select(buildType domain.BuildType, pref domain.CompilerPreference) (domain.ToolchainDescriptor, error) {
	family, reason, err := Choose(buildType, pref, s.platform)
	if err != nil {
		return domain.ToolchainDescriptor{}, err
	}

	file := domain.ToolchainFilePath(s.toolsRoot, family)
	ok, err := s.fs.Exists(file)
	if err != nil {
		return domain.ToolchainDescriptor{}, zerr.With(zerr.Wrap(err, domain.ErrMissingToolchainFile.Error()), "path", file)
	}
	if !ok {
		return domain.ToolchainDescriptor{}, zerr.With(domain.ErrMissingToolchainFile, "path", file)
	}

	return domain.ToolchainDescriptor{
		Family: family,
		Reason: reason,
		File:   file,
	}, nil
}

// Choose maps a build type, compiler preference and platform to a family and the reason for it.
// A forced preference always wins. Otherwise GCC is the default, except that
// sanitizer builds on Darwin use Clang.
func Choose(buildType domain.BuildType, pref domain.CompilerPreference, platform domain.Platform) (domain.CompilerFamily, string, error) {
	if !buildType.Valid() {
		return "", "", zerr.With(domain.ErrInvalidBuildType, "build_type", string(buildType))
	}

	switch pref {
	case domain.CompilerGCC:
		return domain.FamilyGCC, domain.ReasonForced, nil
	case domain.CompilerClang:
		return domain.FamilyClang, domain.ReasonForced, nil
	case domain.CompilerAuto:
	default:
		return "", "", zerr.With(domain.ErrInvalidCompilerChoice, "compiler", string(pref))
	}

	if buildType != domain.BuildSanitize {
		return domain.FamilyGCC, domain.ReasonDefault, nil
	}
	if platform.IsDarwin() {
		return domain.FamilyClang, domain.ReasonSanitizersOnClang, nil
	}
	return domain.FamilyGCC, domain.ReasonAutoSelected, nil
}
