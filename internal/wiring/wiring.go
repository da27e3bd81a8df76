// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cptools/internal/adapters/cmake"
	_ "go.trai.ch/cptools/internal/adapters/config"
	_ "go.trai.ch/cptools/internal/adapters/fs"
	_ "go.trai.ch/cptools/internal/adapters/logger"
	_ "go.trai.ch/cptools/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/cptools/internal/app"
)
