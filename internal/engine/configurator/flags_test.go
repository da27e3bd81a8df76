package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/engine/configurator"
)

func TestResolvePCH(t *testing.T) {
	tests := []struct {
		mode      domain.PCHMode
		buildType domain.BuildType
		family    domain.CompilerFamily
		want      bool
	}{
		{domain.PCHAuto, domain.BuildDebug, domain.FamilyGCC, true},
		{domain.PCHAuto, domain.BuildDebug, domain.FamilyClang, false},
		{domain.PCHAuto, domain.BuildRelease, domain.FamilyGCC, false},
		{domain.PCHAuto, domain.BuildRelease, domain.FamilyClang, false},
		{domain.PCHAuto, domain.BuildSanitize, domain.FamilyGCC, false},
		{domain.PCHOn, domain.BuildRelease, domain.FamilyClang, true},
		{domain.PCHOff, domain.BuildDebug, domain.FamilyGCC, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+string(tt.buildType)+"/"+string(tt.family), func(t *testing.T) {
			assert.Equal(t, tt.want, configurator.ResolvePCH(tt.mode, tt.buildType, tt.family))
		})
	}
}

func TestAssembleFlags(t *testing.T) {
	gcc := domain.ToolchainDescriptor{Family: domain.FamilyGCC, File: "/tools/cmake/gcc-toolchain.cmake"}
	clang := domain.ToolchainDescriptor{Family: domain.FamilyClang, File: "/tools/cmake/clang-toolchain.cmake"}

	tests := []struct {
		name           string
		req            domain.BuildRequest
		desc           domain.ToolchainDescriptor
		timingOverride bool
		first          bool
		want           domain.GeneratorFlags
	}{
		{
			name:  "debug gcc first configure",
			req:   domain.DefaultBuildRequest(),
			desc:  gcc,
			first: true,
			want: domain.GeneratorFlags{
				BuildType:     domain.BuildDebug,
				PCH:           true,
				ToolchainFile: gcc.File,
				Generator:     "Ninja",
			},
		},
		{
			name: "reconfigure omits toolchain and generator",
			req:  domain.DefaultBuildRequest(),
			desc: gcc,
			want: domain.GeneratorFlags{BuildType: domain.BuildDebug, PCH: true},
		},
		{
			name: "release clang enables lto",
			req:  domain.BuildRequest{BuildType: domain.BuildRelease, Compiler: domain.CompilerClang, PCH: domain.PCHAuto},
			desc: clang,
			want: domain.GeneratorFlags{BuildType: domain.BuildRelease, LTO: true},
		},
		{
			name: "release gcc has no lto",
			req:  domain.BuildRequest{BuildType: domain.BuildRelease, Compiler: domain.CompilerGCC, PCH: domain.PCHAuto},
			desc: gcc,
			want: domain.GeneratorFlags{BuildType: domain.BuildRelease},
		},
		{
			name:           "timing override",
			req:            domain.BuildRequest{BuildType: domain.BuildSanitize, PCH: domain.PCHOff},
			desc:           gcc,
			timingOverride: true,
			want:           domain.GeneratorFlags{BuildType: domain.BuildSanitize, Timing: true},
		},
		{
			name: "explicit timing",
			req:  domain.BuildRequest{BuildType: domain.BuildDebug, Timing: true, PCH: domain.PCHOff},
			desc: clang,
			want: domain.GeneratorFlags{BuildType: domain.BuildDebug, Timing: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configurator.AssembleFlags(tt.req, tt.desc, tt.timingOverride, tt.first, "Ninja")
			assert.Equal(t, tt.want, got)
		})
	}
}
