package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// pyProject is the subset of pyproject.toml read by the loader.
type pyProject struct {
	Project *projectTable `toml:"project"`
}

type projectTable struct {
	Name                 string              `toml:"name"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}

// InputLoader implements ports.InputLoader for requirements files and pyproject.toml.
type InputLoader struct{}

// NewInputLoader creates a new InputLoader.
func NewInputLoader() *InputLoader {
	return &InputLoader{}
}

// LoadInput resolves path relative to cwd and reads it into an InputSpec.
// An empty path selects requirements.in, then pyproject.toml.
func (l *InputLoader) LoadInput(cwd, path string, groups []string) (domain.InputSpec, error) {
	if path == "" {
		found, err := findDefaultInput(cwd)
		if err != nil {
			return domain.InputSpec{}, err
		}
		path = found
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	isTOML := filepath.Ext(path) == ".toml"
	if !isTOML && len(groups) > 0 {
		return domain.InputSpec{}, zerr.With(domain.ErrDependencyRequiresTOML, "path", path)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return domain.InputSpec{}, zerr.With(domain.ErrNotAFile, "path", path)
	}

	if !isTOML {
		return domain.InputSpec{Path: path, Kind: domain.InputRequirements}, nil
	}
	return loadPyProject(path, groups)
}

func findDefaultInput(cwd string) (string, error) {
	for _, name := range []string{domain.RequirementsInFileName, domain.PyProjectFileName} {
		candidate := filepath.Join(cwd, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", zerr.With(domain.ErrNoInputFile, "cwd", cwd)
}

func loadPyProject(path string, groups []string) (domain.InputSpec, error) {
	// #nosec G304 -- path has been checked to be a regular file
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.InputSpec{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc pyProject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return domain.InputSpec{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	if doc.Project == nil {
		return domain.InputSpec{}, zerr.With(domain.ErrMissingProjectSection, "path", path)
	}

	requirements := slices.Clone(doc.Project.Dependencies)
	if len(groups) > 0 && len(doc.Project.OptionalDependencies) == 0 {
		return domain.InputSpec{}, zerr.With(domain.ErrNoOptionalDependencies, "path", path)
	}

	seen := make(map[string]bool, len(groups))
	for _, group := range groups {
		if seen[group] {
			continue
		}
		seen[group] = true

		deps := doc.Project.OptionalDependencies[group]
		if len(deps) == 0 {
			return domain.InputSpec{}, zerr.With(domain.ErrOptionalDependencyNotFound, "dependency", group)
		}
		requirements = append(requirements, deps...)
	}

	return domain.InputSpec{
		Path:         path,
		Kind:         domain.InputPyProject,
		Requirements: requirements,
		Project:      doc.Project.Name,
	}, nil
}
