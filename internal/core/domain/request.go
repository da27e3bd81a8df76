// Package domain holds the core types of the build profile engine.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BuildType is the CMake build type of a profile.
type BuildType string

const (
	// BuildDebug builds with debug info and no optimization.
	BuildDebug BuildType = "Debug"
	// BuildRelease builds optimized binaries.
	BuildRelease BuildType = "Release"
	// BuildSanitize builds with address and undefined behavior sanitizers.
	BuildSanitize BuildType = "Sanitize"
)

// BuildTypes lists every supported build type.
func BuildTypes() []BuildType {
	return []BuildType{BuildDebug, BuildRelease, BuildSanitize}
}

// ParseBuildType matches s case-insensitively against the supported build types.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes() {
		if strings.EqualFold(s, string(bt)) {
			return bt, nil
		}
	}
	return "", zerr.With(ErrInvalidBuildType, "build_type", s)
}

// Valid reports whether b is one of the supported build types.
func (b BuildType) Valid() bool {
	switch b {
	case BuildDebug, BuildRelease, BuildSanitize:
		return true
	default:
		return false
	}
}

// CompilerPreference is the user's compiler choice.
type CompilerPreference string

const (
	// CompilerAuto lets the selector pick a compiler from build type and platform.
	CompilerAuto CompilerPreference = "auto"
	// CompilerGCC forces GCC.
	CompilerGCC CompilerPreference = "gcc"
	// CompilerClang forces Clang.
	CompilerClang CompilerPreference = "clang"
)

// CompilerPreferences lists every supported compiler preference.
func CompilerPreferences() []CompilerPreference {
	return []CompilerPreference{CompilerAuto, CompilerGCC, CompilerClang}
}

// ParseCompilerPreference matches s case-insensitively against the supported preferences.
func ParseCompilerPreference(s string) (CompilerPreference, error) {
	for _, p := range CompilerPreferences() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", zerr.With(ErrInvalidCompilerChoice, "compiler", s)
}

// PCHMode controls precompiled headers.
type PCHMode string

const (
	// PCHOn enables precompiled headers.
	PCHOn PCHMode = "on"
	// PCHOff disables precompiled headers.
	PCHOff PCHMode = "off"
	// PCHAuto enables precompiled headers only where they pay off.
	PCHAuto PCHMode = "auto"
)

// ParsePCHMode matches s case-insensitively against on, off and auto.
func ParsePCHMode(s string) (PCHMode, error) {
	for _, m := range []PCHMode{PCHOn, PCHOff, PCHAuto} {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", zerr.With(zerr.With(ErrInvalidArgument, "flag", "--pch"), "value", s)
}

// PCHModeFromBool returns PCHOn for true and PCHOff for false.
func PCHModeFromBool(enabled bool) PCHMode {
	if enabled {
		return PCHOn
	}
	return PCHOff
}

// BuildRequest is the user's intent for a single configure invocation.
type BuildRequest struct {
	BuildType  BuildType
	Compiler   CompilerPreference
	Timing     bool
	PCH        PCHMode
	PCHRebuild bool
}

// DefaultBuildRequest returns the request used when no flags or tokens are given.
func DefaultBuildRequest() BuildRequest {
	return BuildRequest{
		BuildType: BuildDebug,
		Compiler:  CompilerAuto,
		PCH:       PCHAuto,
	}
}
