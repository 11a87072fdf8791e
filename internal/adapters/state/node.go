package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/isofreeze/internal/core/ports"
)

// NodeID is the unique identifier for the pin state store Graft node.
const NodeID graft.ID = "adapter.pin_state_store"

func init() {
	graft.Register(graft.Node[ports.PinStateStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.PinStateStore, error) {
			return NewStore(), nil
		},
	})
}
