package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/isofreeze/internal/adapters/detector"
	"go.trai.ch/isofreeze/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

// OutputModeEnv overrides terminal detection with "tty" or "plain".
const OutputModeEnv = "ISOFREEZE_OUTPUT_MODE"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Executor, error) {
			mode := detector.ResolveMode(detector.DetectEnvironment(), os.Getenv(OutputModeEnv))
			return NewExecutor(mode), nil
		},
	})
}
