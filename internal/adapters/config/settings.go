// Package config loads isofreeze settings and resolver inputs from disk.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SettingsLoader implements ports.SettingsLoader using an optional YAML file.
type SettingsLoader struct{}

// NewSettingsLoader creates a new SettingsLoader.
func NewSettingsLoader() *SettingsLoader {
	return &SettingsLoader{}
}

// LoadSettings reads isofreeze.yaml from cwd. A missing file yields the defaults.
// Keys present in the file override the defaults; empty python or output keep them.
func (l *SettingsLoader) LoadSettings(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	path := filepath.Join(cwd, domain.SettingsFileName)

	if err := readAndUnmarshalYAML(path, &settings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	defaults := domain.DefaultSettings()
	if settings.Python == "" {
		settings.Python = defaults.Python
	}
	if settings.Output == "" {
		settings.Output = defaults.Output
	}
	return settings, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is built from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
