package ports

import "go.trai.ch/cptools/internal/core/domain"

// ConfigLoader resolves the process configuration for a project directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the environment and the optional project file in projectDir.
	Load(projectDir string) (*domain.Config, error)
}
