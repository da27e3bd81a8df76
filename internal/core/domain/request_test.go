package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cptools/internal/core/domain"
)

func TestParseBuildType(t *testing.T) {
	for input, want := range map[string]domain.BuildType{
		"debug":    domain.BuildDebug,
		"Debug":    domain.BuildDebug,
		"RELEASE":  domain.BuildRelease,
		"sanitize": domain.BuildSanitize,
	} {
		got, err := domain.ParseBuildType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
		assert.True(t, got.Valid())
	}

	_, err := domain.ParseBuildType("RelWithDebInfo")
	require.ErrorContains(t, err, domain.ErrInvalidBuildType.Error())
	assert.False(t, domain.BuildType("debug").Valid())
}

func TestParseCompilerPreference(t *testing.T) {
	got, err := domain.ParseCompilerPreference("Clang")
	require.NoError(t, err)
	assert.Equal(t, domain.CompilerClang, got)

	_, err = domain.ParseCompilerPreference("icc")
	require.ErrorContains(t, err, domain.ErrInvalidCompilerChoice.Error())
}

func TestParsePCHMode(t *testing.T) {
	got, err := domain.ParsePCHMode("AUTO")
	require.NoError(t, err)
	assert.Equal(t, domain.PCHAuto, got)

	_, err = domain.ParsePCHMode("maybe")
	require.ErrorContains(t, err, domain.ErrInvalidArgument.Error())

	assert.Equal(t, domain.PCHOn, domain.PCHModeFromBool(true))
	assert.Equal(t, domain.PCHOff, domain.PCHModeFromBool(false))
}

func TestDefaultBuildRequest(t *testing.T) {
	assert.Equal(t, domain.BuildRequest{
		BuildType: domain.BuildDebug,
		Compiler:  domain.CompilerAuto,
		PCH:       domain.PCHAuto,
	}, domain.DefaultBuildRequest())
}
