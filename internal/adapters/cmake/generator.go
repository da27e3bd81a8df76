// Package cmake drives CMake and reads the records it leaves in a build directory.
package cmake

import (
	"context"
	"io"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*Generator)(nil)

// Generator implements ports.Generator by running the cmake binary.
type Generator struct {
	executor ports.Executor
	binary   string
	extra    []string
	stdout   io.Writer
	stderr   io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput streams generator output to the given writers instead of the logger.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(g *Generator) {
		g.stdout = stdout
		g.stderr = stderr
	}
}

// NewGenerator creates a Generator running binary. extra is appended to every configure call.
func NewGenerator(executor ports.Executor, binary string, extra []string, opts ...Option) *Generator {
	g := &Generator{
		executor: executor,
		binary:   binary,
		extra:    extra,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configure runs `cmake -S <src> -B <dir>` with the resolved flags.
func (g *Generator) Configure(ctx context.Context, spec domain.GenerateSpec) error {
	cmd := &domain.Command{
		Name: g.binary,
		Args: ConfigureArgs(spec, g.extra),
		Dir:  spec.SourceDir,
	}
	if err := g.executor.Execute(ctx, cmd, g.stdout, g.stderr); err != nil {
		return zerr.With(err, "build_dir", spec.BuildDir)
	}
	return nil
}

// BuildTarget runs `cmake --build <dir> --target <target>`.
func (g *Generator) BuildTarget(ctx context.Context, buildDir, target string) error {
	cmd := &domain.Command{
		Name: g.binary,
		Args: []string{"--build", buildDir, "--target", target},
	}
	if err := g.executor.Execute(ctx, cmd, g.stdout, g.stderr); err != nil {
		return zerr.With(zerr.With(err, "build_dir", buildDir), "target", target)
	}
	return nil
}

// ConfigureArgs renders the argument list of a configure invocation.
// The toolchain file and generator name are only passed when set on the flags.
func ConfigureArgs(spec domain.GenerateSpec, extra []string) []string {
	f := spec.Flags
	args := []string{"-S", spec.SourceDir, "-B", spec.BuildDir}
	if f.Generator != "" {
		args = append(args, "-G", f.Generator)
	}
	args = append(args, "-DCMAKE_BUILD_TYPE="+string(f.BuildType))
	if f.ToolchainFile != "" {
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+f.ToolchainFile)
	}
	args = append(args,
		"-DCP_ENABLE_TIMING="+onOff(f.Timing),
		"-DCP_ENABLE_PCH="+onOff(f.PCH),
	)
	if f.LTO {
		args = append(args, "-DCP_ENABLE_LTO=ON")
	}
	args = append(args, "-DCMAKE_EXPORT_COMPILE_COMMANDS=ON")
	return append(args, extra...)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
