package configurator

import "go.trai.ch/cptools/internal/core/domain"

// AssembleFlags resolves the generator switches for a request on a selected toolchain.
// firstConfigure is true when the directory holds no generator cache, which is
// the only time the toolchain file and generator name are passed.
func AssembleFlags(
	req domain.BuildRequest,
	desc domain.ToolchainDescriptor,
	timingOverride bool,
	firstConfigure bool,
	cmakeGenerator string,
) domain.GeneratorFlags {
	flags := domain.GeneratorFlags{
		BuildType: req.BuildType,
		Timing:    req.Timing || timingOverride,
		PCH:       ResolvePCH(req.PCH, req.BuildType, desc.Family),
		LTO:       req.BuildType == domain.BuildRelease && desc.Family == domain.FamilyClang,
	}
	if firstConfigure {
		flags.ToolchainFile = desc.File
		flags.Generator = cmakeGenerator
	}
	return flags
}

// ResolvePCH turns a PCH mode into on or off. Auto is on only for GCC debug builds.
func ResolvePCH(mode domain.PCHMode, buildType domain.BuildType, family domain.CompilerFamily) bool {
	switch mode {
	case domain.PCHOn:
		return true
	case domain.PCHOff:
		return false
	default:
		return buildType == domain.BuildDebug && family == domain.FamilyGCC
	}
}
