package ports

import "go.trai.ch/isofreeze/internal/core/domain"

// SettingsLoader defines the interface for loading tool settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// LoadSettings reads the settings file from cwd, falling back to defaults if absent.
	LoadSettings(cwd string) (domain.Settings, error)
}

// InputLoader defines the interface for turning an input file into resolver arguments.
type InputLoader interface {
	// LoadInput reads the input at path. An empty path selects the default file in cwd.
	// groups names the optional dependency groups to include.
	LoadInput(cwd, path string, groups []string) (domain.InputSpec, error)
}
