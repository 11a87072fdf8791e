// Package venv creates throwaway Python virtual environments.
package venv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.EnvironmentFactory using "python -m venv".
type Factory struct {
	exec    ports.Executor
	tempDir string
}

// NewFactory creates a Factory placing environments in the system temp directory.
func NewFactory(exec ports.Executor) *Factory {
	return &Factory{exec: exec}
}

// NewFactoryWithDir creates a Factory placing environments under dir.
func NewFactoryWithDir(exec ports.Executor, dir string) *Factory {
	return &Factory{exec: exec, tempDir: dir}
}

// Create builds a venv from basePython and upgrades its pip.
// The returned cleanup removes the environment and is never nil.
func (f *Factory) Create(ctx context.Context, basePython string) (string, func() error, error) {
	dir, err := os.MkdirTemp(f.tempDir, domain.ScratchEnvPrefix)
	if err != nil {
		return "", noop, zerr.Wrap(err, domain.ErrScratchEnvFailed.Error())
	}
	cleanup := func() error { return os.RemoveAll(dir) }

	if _, err := f.exec.Output(ctx, domain.NewCommand(basePython, "-m", "venv", dir)); err != nil {
		return "", cleanup, zerr.With(zerr.Wrap(err, domain.ErrScratchEnvFailed.Error()), "python", basePython)
	}

	python := Interpreter(dir)
	upgrade := domain.NewCommand(python, "-m", "pip", "install", "-q", "-U", "pip")
	if _, err := f.exec.Output(ctx, upgrade); err != nil {
		return "", cleanup, zerr.With(zerr.Wrap(err, domain.ErrScratchEnvFailed.Error()), "python", python)
	}

	return python, cleanup, nil
}

// Interpreter returns the path of the Python executable inside a venv directory.
func Interpreter(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

func noop() error { return nil }
