package domain

import "strings"

// Platform is the host operating system as reported by runtime.GOOS.
type Platform string

// PlatformDarwin is macOS, where sanitizers require Clang.
const PlatformDarwin Platform = "darwin"

// IsDarwin reports whether p is the Darwin platform.
func (p Platform) IsDarwin() bool {
	return p == PlatformDarwin
}

// Config is the process-wide configuration, built once at startup.
// Components receive it explicitly and never read the environment themselves.
type Config struct {
	// ProjectDir is the directory holding the solution sources and CMakeLists.txt.
	ProjectDir string `validate:"required"`
	// ToolsRoot locates the toolchain files and template store.
	ToolsRoot string `validate:"required,dir"`
	// BuildRoot is the absolute directory holding one subdirectory per profile.
	BuildRoot string `validate:"required"`
	// Generator is the build generator binary.
	Generator string `validate:"required"`
	// CMakeGenerator is passed as -G on first configuration when set.
	CMakeGenerator string
	// PCHCleanTarget is the target built when a precompiled header rebuild is requested.
	PCHCleanTarget string `validate:"required"`
	// ExtraArgs are appended to every configure invocation.
	ExtraArgs []string
	// Platform is the host platform.
	Platform Platform `validate:"required"`
	// TimingOverride forces timing on regardless of flags.
	TimingOverride bool
	// SystemRecordCheck enables the staleness check against the generator's system record.
	SystemRecordCheck bool
}

// Enabled reports whether an environment switch is on.
// Any non-empty value other than 0, false, off or no enables it.
func Enabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
