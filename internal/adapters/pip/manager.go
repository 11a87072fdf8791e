// Package pip drives the pip package manager of a Python interpreter.
package pip

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// requireVirtualenvEnv must be disabled so that reports and listings work
// against interpreters outside a virtual environment.
const requireVirtualenvEnv = "PIP_REQUIRE_VIRTUALENV=false"

// Manager implements ports.PackageManager by invoking "<python> -m pip".
type Manager struct {
	exec   ports.Executor
	python string
	stdout io.Writer
	stderr io.Writer
}

// New creates a Manager for the given interpreter.
// Streamed commands write to the process stdout and stderr.
func New(exec ports.Executor, python string) *Manager {
	return &Manager{
		exec:   exec,
		python: python,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects streamed command output.
func (m *Manager) SetOutput(stdout, stderr io.Writer) {
	m.stdout = stdout
	m.stderr = stderr
}

// Version returns the raw "pip --version" banner.
func (m *Manager) Version(ctx context.Context) (string, error) {
	out, err := m.exec.Output(ctx, m.command("--version"))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Report resolves input without installing anything and returns the JSON report.
func (m *Manager) Report(ctx context.Context, input domain.InputSpec, extraArgs []string) ([]byte, error) {
	args := make([]string, 0, len(extraArgs)+8)
	args = append(args, "install")
	args = append(args, extraArgs...)
	args = append(args, "-q", "--dry-run", "--ignore-installed", "--report", "-")
	args = append(args, input.ResolverArgs()...)

	return m.exec.Output(ctx, m.command(args...).WithEnv(requireVirtualenvEnv))
}

type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListInstalled returns the non-editable packages installed for the interpreter.
func (m *Manager) ListInstalled(ctx context.Context) ([]domain.InstalledPackage, error) {
	cmd := m.command("list", "--format", "json", "--exclude-editable").WithEnv(requireVirtualenvEnv)
	out, err := m.exec.Output(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var entries []listEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledDecodeFailed.Error()), "command", cmd.String())
	}

	installed := make([]domain.InstalledPackage, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			err := zerr.With(domain.ErrInstalledDecodeFailed, "field", "name")
			return nil, zerr.With(err, "index", i)
		}
		installed = append(installed, domain.InstalledPackage{Name: e.Name, Version: e.Version})
	}
	return installed, nil
}

// Uninstall removes all named packages in one "pip uninstall -y" run.
func (m *Manager) Uninstall(ctx context.Context, names []string) error {
	args := append([]string{"uninstall", "-y"}, names...)
	return m.exec.Run(ctx, m.command(args...), m.stdout, m.stderr)
}

// Install installs requirements in one "pip install" run.
func (m *Manager) Install(ctx context.Context, requirements []string, upgrade bool) error {
	args := []string{"install"}
	if upgrade {
		args = append(args, "--upgrade")
	}
	args = append(args, requirements...)
	return m.exec.Run(ctx, m.command(args...), m.stdout, m.stderr)
}

func (m *Manager) command(args ...string) domain.Command {
	return domain.NewCommand(m.python, append([]string{"-m", "pip"}, args...)...)
}

// Factory implements ports.PackageManagerFactory.
type Factory struct {
	exec ports.Executor
}

// NewFactory creates a Factory sharing a single executor.
func NewFactory(exec ports.Executor) *Factory {
	return &Factory{exec: exec}
}

// For returns a Manager bound to python.
func (f *Factory) For(python string) ports.PackageManager {
	return New(f.exec, python)
}
