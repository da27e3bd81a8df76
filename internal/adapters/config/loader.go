// Package config builds the process-wide configuration from the environment and the project file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Keys bound to CP_* environment variables.
const (
	keyToolsRoot = "tools_root"
	keyTiming    = "timing"
	keyGenerator = "generator"

	envPrefix = "CP"
)

// Loader implements ports.ConfigLoader using viper for the environment and yaml.v3 for the project file.
type Loader struct {
	// Platform overrides the host platform. Empty means runtime.GOOS.
	Platform domain.Platform

	validate *validator.Validate
}

// NewLoader creates a Loader for the host platform.
func NewLoader() *Loader {
	return &Loader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads CP_* variables and the optional project file in projectDir.
// Environment variables take precedence over the project file.
func (l *Loader) Load(projectDir string) (*domain.Config, error) {
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "project_dir", projectDir)
	}

	file, err := readProjectFile(filepath.Join(projectDir, domain.ProjectFileName))
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range []string{keyToolsRoot, keyTiming, keyGenerator} {
		if err := v.BindEnv(key); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "key", key)
		}
	}
	v.SetDefault(keyGenerator, firstNonEmpty(file.Generator, domain.DefaultGenerator))

	toolsRoot := v.GetString(keyToolsRoot)
	if toolsRoot == "" {
		return nil, domain.ErrToolsRootMissing
	}
	if toolsRoot, err = filepath.Abs(toolsRoot); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolsRootMissing.Error()), "tools_root", toolsRoot)
	}
	if info, statErr := os.Stat(toolsRoot); statErr != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrToolsRootMissing, "tools_root", toolsRoot)
	}

	buildRoot := firstNonEmpty(file.BuildRoot, domain.DefaultBuildRoot)
	if !filepath.IsAbs(buildRoot) {
		buildRoot = filepath.Join(projectDir, buildRoot)
	}
	buildRoot = filepath.Clean(buildRoot)
	// clean --all removes the build root, so it must never hold the project.
	if domain.PathContains(buildRoot, projectDir) {
		return nil, zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "BuildRoot"), "build_root", buildRoot)
	}

	platform := l.Platform
	if platform == "" {
		platform = domain.Platform(runtime.GOOS)
	}

	systemRecordCheck := true
	if file.SystemRecordCheck != nil {
		systemRecordCheck = *file.SystemRecordCheck
	}

	cfg := &domain.Config{
		ProjectDir:        projectDir,
		ToolsRoot:         toolsRoot,
		BuildRoot:         buildRoot,
		Generator:         v.GetString(keyGenerator),
		CMakeGenerator:    file.CMakeGenerator,
		PCHCleanTarget:    firstNonEmpty(file.PCHCleanTarget, domain.DefaultPCHCleanTarget),
		ExtraArgs:         file.ExtraArgs,
		Platform:          platform,
		TimingOverride:    domain.Enabled(v.GetString(keyTiming)),
		SystemRecordCheck: systemRecordCheck,
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}
	return cfg, nil
}

// readProjectFile returns an empty ProjectFile when path does not exist.
func readProjectFile(path string) (ProjectFile, error) {
	var file ProjectFile

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return file, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", fe.Field()), "rule", fe.Tag())
	}
	return zerr.Wrap(err, domain.ErrInvalidConfig.Error())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
