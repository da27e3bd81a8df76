package ports

import "go.trai.ch/cptools/internal/core/domain"

// StateStore persists the last successful configuration and the active profile.
//
//go:generate mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Load returns the persisted configuration.
	// Returns nil, nil if nothing has been persisted.
	Load() (*domain.ConfigState, error)

	// Save replaces the persisted configuration.
	Save(state domain.ConfigState) error

	// Active returns the active profile directory.
	// Returns "", nil if no profile is active.
	Active() (string, error)

	// SetActive replaces the active profile directory.
	SetActive(dir string) error

	// Clear removes the persisted configuration and the active profile marker.
	Clear() error
}
