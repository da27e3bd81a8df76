package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a configure flag or token has an unrecognized value.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrInvalidCompilerChoice is returned when the compiler preference is not gcc, clang or auto.
	ErrInvalidCompilerChoice = zerr.New("invalid compiler choice, expected 'gcc', 'clang' or 'auto'")

	// ErrInvalidBuildType is returned when a profile is requested for an unknown build type.
	ErrInvalidBuildType = zerr.New("invalid build type, expected 'Debug', 'Release' or 'Sanitize'")

	// ErrInvalidCompilerFamily is returned when a profile is requested for an unknown compiler family.
	ErrInvalidCompilerFamily = zerr.New("invalid compiler family")

	// ErrMissingToolchainFile is returned when the selected toolchain definition file does not exist.
	ErrMissingToolchainFile = zerr.New("toolchain file not found, re-run the initialization step to restore it")

	// ErrGeneratorConfigurationFailed is returned when the build generator exits with a failure.
	ErrGeneratorConfigurationFailed = zerr.New("build generator configuration failed")

	// ErrPCHCleanupFailed is reported when the precompiled header cleanup target fails.
	ErrPCHCleanupFailed = zerr.New("precompiled header cleanup failed")

	// ErrWipeFailed is returned when a stale profile directory cannot be removed.
	ErrWipeFailed = zerr.New("failed to remove stale build directory")

	// ErrRefusingToWipe is returned when asked to remove an empty path or a filesystem root.
	ErrRefusingToWipe = zerr.New("refusing to remove directory")

	// ErrCacheReadFailed is returned when the generator cache of a profile directory cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read generator cache")

	// ErrToolsRootMissing is returned when the tools root is unset or is not a directory.
	ErrToolsRootMissing = zerr.New("tools root is not set or is not a directory, set CP_TOOLS_ROOT")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidConfig is returned when the resolved configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrStateReadFailed is returned when persisted state cannot be read.
	ErrStateReadFailed = zerr.New("failed to read persisted state")

	// ErrStateWriteFailed is returned when persisted state cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write persisted state")

	// ErrStateCorrupt is returned when the persisted state record is malformed.
	ErrStateCorrupt = zerr.New("persisted state record is malformed")

	// ErrNoActiveProfile is returned when no profile has been configured yet.
	ErrNoActiveProfile = zerr.New("no active build profile, run configure first")

	// ErrCleanFailed is returned when clean cannot remove a path.
	ErrCleanFailed = zerr.New("failed to clean")

	// ErrCommandFailed is returned by the executor when a process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)
