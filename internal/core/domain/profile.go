package domain

import "go.trai.ch/zerr"

// ProfileKey identifies an isolated build configuration.
type ProfileKey struct {
	Family    CompilerFamily
	BuildType BuildType
}

// NewProfileKey derives the key for a compiler family and build type.
func NewProfileKey(family CompilerFamily, buildType BuildType) (ProfileKey, error) {
	if !family.Valid() {
		return ProfileKey{}, zerr.With(ErrInvalidCompilerFamily, "family", string(family))
	}
	if !buildType.Valid() {
		return ProfileKey{}, zerr.With(ErrInvalidBuildType, "build_type", string(buildType))
	}
	return ProfileKey{Family: family, BuildType: buildType}, nil
}

// String returns the key as family/BuildType, e.g. "gcc/Debug".
func (k ProfileKey) String() string {
	return string(k.Family) + "/" + string(k.BuildType)
}

// DirName returns the profile directory name, e.g. "gcc-Debug".
// Families never contain '-', so the name is unambiguous.
func (k ProfileKey) DirName() string {
	return string(k.Family) + "-" + string(k.BuildType)
}
