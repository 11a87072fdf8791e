// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/isofreeze/internal/adapters/config"
	_ "go.trai.ch/isofreeze/internal/adapters/logger"
	_ "go.trai.ch/isofreeze/internal/adapters/pip"
	_ "go.trai.ch/isofreeze/internal/adapters/shell"
	_ "go.trai.ch/isofreeze/internal/adapters/state"
	_ "go.trai.ch/isofreeze/internal/adapters/venv"
	_ "go.trai.ch/isofreeze/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/isofreeze/internal/app"
)
