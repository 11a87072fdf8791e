package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/isofreeze/internal/core/ports"
)

const (
	// SettingsNodeID is the unique identifier for the settings loader Graft node.
	SettingsNodeID graft.ID = "adapter.settings_loader"
	// InputNodeID is the unique identifier for the input loader Graft node.
	InputNodeID graft.ID = "adapter.input_loader"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.InputLoader]{
		ID:        InputNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.InputLoader, error) {
			return NewInputLoader(), nil
		},
	})
}
