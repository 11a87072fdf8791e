package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/isofreeze/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/adapters/pip"     //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/adapters/state"   //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/adapters/venv"    //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/isofreeze/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			config.InputNodeID,
			pip.NodeID,
			venv.NodeID,
			state.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	inputLoader, err := graft.Dep[ports.InputLoader](ctx)
	if err != nil {
		return nil, err
	}

	managers, err := graft.Dep[ports.PackageManagerFactory](ctx)
	if err != nil {
		return nil, err
	}

	envFactory, err := graft.Dep[ports.EnvironmentFactory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PinStateStore](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settingsLoader, inputLoader, managers, envFactory, store, fileWatcher, log), nil
}
