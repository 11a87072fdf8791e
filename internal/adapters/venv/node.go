package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/isofreeze/internal/adapters/shell"
	"go.trai.ch/isofreeze/internal/core/ports"
)

// NodeID is the unique identifier for the scratch environment factory Graft node.
const NodeID graft.ID = "adapter.venv_factory"

func init() {
	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentFactory, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(exec), nil
		},
	})
}
