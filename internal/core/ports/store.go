package ports

import "go.trai.ch/isofreeze/internal/core/domain"

// PinStateStore defines the interface for storing and retrieving pin fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PinStateStore interface {
	// Get retrieves the pin state for an output path.
	// Returns nil, nil if not found.
	Get(root, output string) (*domain.PinState, error)

	// Put stores the pin state.
	Put(root string, state domain.PinState) error
}
