// Package configurator runs a configure invocation from request to persisted state.
package configurator

import (
	"context"
	"fmt"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
	"go.trai.ch/cptools/internal/engine/profile"
	"go.trai.ch/cptools/internal/engine/request"
	"go.trai.ch/cptools/internal/engine/staleness"
	"go.trai.ch/cptools/internal/engine/toolchain"
	"go.trai.ch/zerr"
)

// Result describes a successful configuration.
type Result struct {
	Request   domain.BuildRequest
	Toolchain domain.ToolchainDescriptor
	Key       domain.ProfileKey
	BuildDir  string
	// StaleReason is why the directory was recreated, empty if it was reused.
	StaleReason string
	Wiped       bool
	// FirstConfigure reports whether the generator saw the directory without a cache.
	FirstConfigure bool
	Flags          domain.GeneratorFlags
	State          domain.ConfigState
	Phases         []Phase
}

// Configurator selects a toolchain, resolves and validates the profile directory,
// invokes the generator and persists the outcome.
type Configurator struct {
	cfg       *domain.Config
	fs        ports.FileSystem
	selector  *toolchain.Selector
	resolver  *profile.Resolver
	detector  *staleness.Detector
	generator ports.Generator
	store     ports.StateStore
	logger    ports.Logger
}

// New creates a Configurator for cfg.
func New(
	cfg *domain.Config,
	fs ports.FileSystem,
	inspector ports.CacheInspector,
	generator ports.Generator,
	store ports.StateStore,
	logger ports.Logger,
) *Configurator {
	return &Configurator{
		cfg:       cfg,
		fs:        fs,
		selector:  toolchain.NewSelector(fs, cfg.ToolsRoot, cfg.Platform),
		resolver:  profile.NewResolver(cfg.BuildRoot),
		detector:  staleness.NewDetector(inspector, cfg.SystemRecordCheck),
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// Run parses args and configures the requested profile.
// Unknown flags are reported as warnings.
func (c *Configurator) Run(ctx context.Context, args []string) (*Result, error) {
	req, warnings, err := request.Parse(args)
	for _, w := range warnings {
		c.logger.Warn(w)
	}
	if err != nil {
		return nil, failed(err, PhaseParsingRequest)
	}

	res, err := c.Configure(ctx, req)
	if err != nil {
		return nil, err
	}
	res.Phases = append([]Phase{PhaseParsingRequest}, res.Phases...)
	return res, nil
}

// Configure configures the profile for req. Nothing is persisted unless the generator succeeds.
func (c *Configurator) Configure(ctx context.Context, req domain.BuildRequest) (*Result, error) {
	res := &Result{Request: req}
	step := func(p Phase) { res.Phases = append(res.Phases, p) }

	step(PhaseSelectingToolchain)
	desc, err := c.selector.Select(req.BuildType, req.Compiler)
	if err != nil {
		return nil, failed(err, PhaseSelectingToolchain)
	}
	res.Toolchain = desc

	step(PhaseResolvingDirectory)
	key, err := profile.Key(desc, req.BuildType)
	if err != nil {
		return nil, failed(err, PhaseResolvingDirectory)
	}
	res.Key = key
	res.BuildDir = c.resolver.Resolve(key)

	step(PhaseDetectingStaleness)
	verdict, err := c.detector.Detect(res.BuildDir, desc)
	if err != nil {
		return nil, failed(err, PhaseDetectingStaleness)
	}

	if verdict.Stale() {
		step(PhaseWipingDirectory)
		c.logger.Warn(fmt.Sprintf("%s: %s, recreating %s", key, verdict.Reason, res.BuildDir))
		if err := c.fs.RemoveAll(res.BuildDir); err != nil {
			return nil, failed(zerr.With(zerr.Wrap(err, domain.ErrWipeFailed.Error()), "build_dir", res.BuildDir), PhaseWipingDirectory)
		}
		res.StaleReason = verdict.Reason
		res.Wiped = true
	} else {
		step(PhaseIdle)
	}

	step(PhaseAssemblingFlags)
	res.FirstConfigure = !verdict.Configured || res.Wiped
	res.Flags = AssembleFlags(req, desc, c.cfg.TimingOverride, res.FirstConfigure, c.cfg.CMakeGenerator)

	step(PhaseInvokingGenerator)
	c.logger.Info(fmt.Sprintf("configuring %s with %s (%s)", key, desc.FileBase(), desc.Reason))
	spec := domain.GenerateSpec{
		SourceDir: c.cfg.ProjectDir,
		BuildDir:  res.BuildDir,
		Flags:     res.Flags,
	}
	if err := c.generator.Configure(ctx, spec); err != nil {
		return nil, failed(zerr.Wrap(err, domain.ErrGeneratorConfigurationFailed.Error()), PhaseInvokingGenerator)
	}

	if req.PCHRebuild {
		// A fresh directory may not have the cleanup target yet.
		if err := c.generator.BuildTarget(ctx, res.BuildDir, c.cfg.PCHCleanTarget); err != nil {
			c.logger.Warn(fmt.Sprintf("%s: %v", domain.ErrPCHCleanupFailed, err))
		}
	}

	step(PhasePersistingState)
	res.State = domain.ConfigState{
		BuildType: req.BuildType,
		Family:    desc.Family,
		PCH:       domain.PCHModeFromBool(res.Flags.PCH),
		BuildDir:  res.BuildDir,
	}
	if err := c.store.Save(res.State); err != nil {
		return nil, failed(err, PhasePersistingState)
	}
	if err := c.store.SetActive(res.BuildDir); err != nil {
		return nil, failed(err, PhasePersistingState)
	}

	return res, nil
}

// failed tags err with the phase it occurred in and the terminal state.
func failed(err error, phase Phase) error {
	return zerr.With(zerr.With(err, "phase", string(phase)), "state", string(PhaseReportingFailure))
}
