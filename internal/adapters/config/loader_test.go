package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cptools/internal/adapters/config"
	"go.trai.ch/cptools/internal/core/domain"
)

// setupEnv points CP_TOOLS_ROOT at a fresh directory and clears the other CP_* variables.
func setupEnv(t *testing.T) string {
	t.Helper()
	toolsRoot := t.TempDir()
	t.Setenv("CP_TOOLS_ROOT", toolsRoot)
	t.Setenv("CP_TIMING", "")
	t.Setenv("CP_GENERATOR", "")
	return toolsRoot
}

func writeProjectFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cptools.yaml"), []byte(content), 0o600))
}

func TestLoader_Defaults(t *testing.T) {
	toolsRoot := setupEnv(t)
	project := t.TempDir()

	loader := config.NewLoader()
	loader.Platform = "linux"

	cfg, err := loader.Load(project)
	require.NoError(t, err)

	assert.Equal(t, project, cfg.ProjectDir)
	assert.Equal(t, toolsRoot, cfg.ToolsRoot)
	assert.Equal(t, filepath.Join(project, "build"), cfg.BuildRoot)
	assert.Equal(t, "cmake", cfg.Generator)
	assert.Empty(t, cfg.CMakeGenerator)
	assert.Equal(t, "pch_clean", cfg.PCHCleanTarget)
	assert.Equal(t, domain.Platform("linux"), cfg.Platform)
	assert.False(t, cfg.TimingOverride)
	assert.True(t, cfg.SystemRecordCheck)
	assert.Empty(t, cfg.ExtraArgs)
}

func TestLoader_HostPlatform(t *testing.T) {
	setupEnv(t)

	cfg, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Platform)
}

func TestLoader_ProjectFile(t *testing.T) {
	setupEnv(t)
	project := t.TempDir()
	writeProjectFile(t, project, `
build_root: out
generator: /opt/cmake/bin/cmake
cmake_generator: Ninja
pch_clean_target: drop_pch
system_record_check: false
extra_args:
  - -DCP_STRICT=ON
`)

	cfg, err := config.NewLoader().Load(project)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(project, "out"), cfg.BuildRoot)
	assert.Equal(t, "/opt/cmake/bin/cmake", cfg.Generator)
	assert.Equal(t, "Ninja", cfg.CMakeGenerator)
	assert.Equal(t, "drop_pch", cfg.PCHCleanTarget)
	assert.False(t, cfg.SystemRecordCheck)
	assert.Equal(t, []string{"-DCP_STRICT=ON"}, cfg.ExtraArgs)
}

func TestLoader_AbsoluteBuildRoot(t *testing.T) {
	setupEnv(t)
	project := t.TempDir()
	root := filepath.Join(t.TempDir(), "builds")
	writeProjectFile(t, project, "build_root: "+root+"\n")

	cfg, err := config.NewLoader().Load(project)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.BuildRoot)
}

func TestLoader_EnvironmentWins(t *testing.T) {
	setupEnv(t)
	t.Setenv("CP_GENERATOR", "/usr/local/bin/cmake")
	t.Setenv("CP_TIMING", "true")
	project := t.TempDir()
	writeProjectFile(t, project, "generator: /opt/cmake/bin/cmake\n")

	cfg, err := config.NewLoader().Load(project)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/cmake", cfg.Generator)
	assert.True(t, cfg.TimingOverride)
}

func TestLoader_ToolsRootMissing(t *testing.T) {
	setupEnv(t)

	t.Run("unset", func(t *testing.T) {
		t.Setenv("CP_TOOLS_ROOT", "")
		_, err := config.NewLoader().Load(t.TempDir())
		require.ErrorIs(t, err, domain.ErrToolsRootMissing)
	})

	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o600))
		t.Setenv("CP_TOOLS_ROOT", file)

		_, err := config.NewLoader().Load(t.TempDir())
		require.ErrorContains(t, err, domain.ErrToolsRootMissing.Error())
	})

	t.Run("does not exist", func(t *testing.T) {
		t.Setenv("CP_TOOLS_ROOT", filepath.Join(t.TempDir(), "missing"))

		_, err := config.NewLoader().Load(t.TempDir())
		require.ErrorContains(t, err, domain.ErrToolsRootMissing.Error())
	})
}

func TestLoader_BuildRootHoldingProject(t *testing.T) {
	setupEnv(t)

	for _, root := range []string{".", "./", "..", "build/.."} {
		t.Run(root, func(t *testing.T) {
			project := t.TempDir()
			writeProjectFile(t, project, "build_root: "+root+"\n")

			_, err := config.NewLoader().Load(project)
			require.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
		})
	}

	t.Run("absolute project dir", func(t *testing.T) {
		project := t.TempDir()
		writeProjectFile(t, project, "build_root: "+project+"\n")

		_, err := config.NewLoader().Load(project)
		require.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
	})
}

func TestLoader_TimingOverride(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "", want: false},
		{value: "0", want: false},
		{value: "false", want: false},
		{value: "off", want: false},
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "on", want: true},
		{value: "ON", want: true},
		{value: "yes", want: true},
	}

	for _, tt := range tests {
		t.Run("CP_TIMING="+tt.value, func(t *testing.T) {
			setupEnv(t)
			t.Setenv("CP_TIMING", tt.value)

			cfg, err := config.NewLoader().Load(t.TempDir())
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TimingOverride)
		})
	}
}

func TestLoader_MalformedProjectFile(t *testing.T) {
	setupEnv(t)
	project := t.TempDir()
	writeProjectFile(t, project, "extra_args: [unterminated\n")

	_, err := config.NewLoader().Load(project)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_UnreadableProjectFile(t *testing.T) {
	setupEnv(t)
	project := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(project, ".cptools.yaml"), 0o750))

	_, err := config.NewLoader().Load(project)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
