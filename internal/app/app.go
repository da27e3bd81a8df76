// Package app implements the application layer for cptools.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/cptools/internal/adapters/cmake" //nolint:depguard // Wired in app layer
	"go.trai.ch/cptools/internal/adapters/state" //nolint:depguard // Wired in app layer
	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/cptools/internal/engine/configurator"
	"go.trai.ch/cptools/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	logger    ports.Logger
	fs        ports.FileSystem
	inspector ports.CacheInspector
	executor  ports.Executor
	workDir   string
	genOpts   []cmake.Option
}

// New creates a new App instance working in workDir.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	fs ports.FileSystem,
	inspector ports.CacheInspector,
	executor ports.Executor,
	workDir string,
) *App {
	return &App{
		loader:    loader,
		logger:    log,
		fs:        fs,
		inspector: inspector,
		executor:  executor,
		workDir:   workDir,
	}
}

// WithGeneratorOutput streams generator output to the given writers instead of the logger.
func (a *App) WithGeneratorOutput(stdout, stderr io.Writer) *App {
	a.genOpts = append(a.genOpts, cmake.WithOutput(stdout, stderr))
	return a
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All also removes every profile directory under the build root.
	All bool
}

// Configure parses args and configures the requested build profile.
func (a *App) Configure(ctx context.Context, args []string) error {
	cfg, err := a.loader.Load(a.workDir)
	if err != nil {
		return err
	}

	generator := cmake.NewGenerator(a.executor, cfg.Generator, cfg.ExtraArgs, a.genOpts...)
	c := configurator.New(cfg, a.fs, a.inspector, generator, state.NewStore(cfg.ProjectDir), a.logger)

	res, err := c.Run(ctx, args)
	if err != nil {
		return err
	}

	action := "configured"
	if res.Wiped {
		action = "recreated"
	}
	a.logger.Info(fmt.Sprintf("%s %s %s in %s (toolchain %s, pch %s, lto %s, timing %s)",
		style.Check, action, res.Key, res.BuildDir,
		res.Toolchain.Family, onOff(res.Flags.PCH), onOff(res.Flags.LTO), onOff(res.Flags.Timing)))
	return nil
}

// Status writes the persisted configuration and the active profile to w.
func (a *App) Status(_ context.Context, w io.Writer) error {
	cfg, err := a.loader.Load(a.workDir)
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.ProjectDir)
	st, err := store.Load()
	if err != nil {
		return err
	}
	if st == nil {
		return domain.ErrNoActiveProfile
	}

	active, err := store.Active()
	if err != nil {
		return err
	}

	cache := "missing"
	meta, err := a.inspector.Inspect(st.BuildDir)
	if err != nil {
		return err
	}
	if meta.Configured {
		cache = "configured"
		if family, ok := meta.Family(); ok {
			cache += " (" + string(family) + ")"
		}
	}

	key := domain.ProfileKey{Family: st.Family, BuildType: st.BuildType}
	rows := [][2]string{
		{"profile", key.String()},
		{"build dir", st.BuildDir},
		{"pch", string(st.PCH)},
		{"active", firstNonEmpty(active, "none")},
		{"cache", cache},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", row[0]+":", row[1]); err != nil {
			return zerr.Wrap(err, "failed to write status")
		}
	}
	return nil
}

// Clean removes the persisted configuration and the active pointer.
// With opts.All the whole build root is removed as well.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loader.Load(a.workDir)
	if err != nil {
		return err
	}

	if opts.All && domain.PathContains(cfg.BuildRoot, cfg.ProjectDir) {
		return zerr.With(zerr.Wrap(domain.ErrRefusingToWipe, domain.ErrCleanFailed.Error()), "build_root", cfg.BuildRoot)
	}

	if err := state.NewStore(cfg.ProjectDir).Clear(); err != nil {
		return zerr.Wrap(err, domain.ErrCleanFailed.Error())
	}

	if opts.All {
		if err := a.fs.RemoveAll(cfg.BuildRoot); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "build_root", cfg.BuildRoot)
		}
		a.logger.Info(fmt.Sprintf("%s removed %s", style.Check, cfg.BuildRoot))
	}

	a.logger.Info(style.Check + " cleared the active profile")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
