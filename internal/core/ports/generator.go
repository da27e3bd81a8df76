package ports

import (
	"context"

	"go.trai.ch/cptools/internal/core/domain"
)

// Generator drives the external build generator.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Configure generates (or regenerates) the build system in spec.BuildDir.
	// It blocks until the generator exits.
	Configure(ctx context.Context, spec domain.GenerateSpec) error

	// BuildTarget builds a single target in an already configured directory.
	BuildTarget(ctx context.Context, buildDir, target string) error
}

// CacheInspector reads what the generator recorded in a profile directory.
type CacheInspector interface {
	// Inspect returns the cached toolchain metadata of dir.
	// A missing directory or cache yields metadata with Configured set to false.
	Inspect(dir string) (domain.CacheMetadata, error)
}
