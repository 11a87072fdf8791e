package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/isofreeze/internal/adapters/config"
	"go.trai.ch/isofreeze/internal/core/domain"
)

const pyProjectContent = `
[project]
name = "awesome-app"
dependencies = ["tomli", "pyjokes>=0.6"]

[project.optional-dependencies]
dev = ["pytest"]
doc = ["mkdocs", "mkdocs-material"]
`

func TestInputLoader_DefaultRequirementsIn(t *testing.T) {
	dir := t.TempDir()
	in := createFile(t, dir, domain.RequirementsInFileName, "tomli\n")
	createFile(t, dir, domain.PyProjectFileName, pyProjectContent)

	spec, err := config.NewInputLoader().LoadInput(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.InputSpec{Path: in, Kind: domain.InputRequirements}, spec)
	assert.Equal(t, []string{"-r", in}, spec.ResolverArgs())
}

func TestInputLoader_DefaultPyProject(t *testing.T) {
	dir := t.TempDir()
	toml := createFile(t, dir, domain.PyProjectFileName, pyProjectContent)

	spec, err := config.NewInputLoader().LoadInput(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, toml, spec.Path)
	assert.Equal(t, domain.InputPyProject, spec.Kind)
	assert.Equal(t, []string{"tomli", "pyjokes>=0.6"}, spec.Requirements)
	assert.Equal(t, "awesome-app", spec.Project)
}

func TestInputLoader_NoDefault(t *testing.T) {
	_, err := config.NewInputLoader().LoadInput(t.TempDir(), "", nil)
	require.ErrorContains(t, err, domain.ErrNoInputFile.Error())
}

func TestInputLoader_ExplicitRelativePath(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "requirements/base.in", "rich\n")

	spec, err := config.NewInputLoader().LoadInput(dir, "requirements/base.in", nil)
	require.NoError(t, err)
	assert.Equal(t, path, spec.Path)
	assert.Equal(t, domain.InputRequirements, spec.Kind)
}

func TestInputLoader_OptionalGroups(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.PyProjectFileName, pyProjectContent)

	spec, err := config.NewInputLoader().LoadInput(dir, domain.PyProjectFileName, []string{"doc", "dev", "doc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tomli", "pyjokes>=0.6", "mkdocs", "mkdocs-material", "pytest"}, spec.Requirements)
}

func TestInputLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		groups  []string
		wantErr error
	}{
		{
			name:    "dependency on requirements file",
			file:    "requirements.in",
			content: "tomli\n",
			groups:  []string{"dev"},
			wantErr: domain.ErrDependencyRequiresTOML,
		},
		{
			name:    "missing project section",
			file:    "pyproject.toml",
			content: "[tool.black]\nline-length = 88\n",
			wantErr: domain.ErrMissingProjectSection,
		},
		{
			name:    "no optional dependencies",
			file:    "pyproject.toml",
			content: "[project]\nname = \"x\"\ndependencies = [\"tomli\"]\n",
			groups:  []string{"dev"},
			wantErr: domain.ErrNoOptionalDependencies,
		},
		{
			name:    "unknown optional dependency",
			file:    "pyproject.toml",
			content: pyProjectContent,
			groups:  []string{"test"},
			wantErr: domain.ErrOptionalDependencyNotFound,
		},
		{
			name:    "invalid toml",
			file:    "pyproject.toml",
			content: "[project\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, tt.file, tt.content)

			_, err := config.NewInputLoader().LoadInput(dir, tt.file, tt.groups)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestInputLoader_NotAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "reqs"), domain.DirPerm))

	_, err := config.NewInputLoader().LoadInput(dir, "reqs", nil)
	require.ErrorContains(t, err, domain.ErrNotAFile.Error())

	_, err = config.NewInputLoader().LoadInput(dir, "missing.in", nil)
	require.ErrorContains(t, err, domain.ErrNotAFile.Error())
}
