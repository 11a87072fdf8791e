// Package app implements the application layer for isofreeze.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/isofreeze/internal/adapters/pip"     //nolint:depguard // Version policy lives with the pip adapter
	"go.trai.ch/isofreeze/internal/adapters/state"   //nolint:depguard // Fingerprint format lives with the store
	"go.trai.ch/isofreeze/internal/adapters/watcher" //nolint:depguard // Debounce policy lives with the watcher
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.trai.ch/isofreeze/internal/engine/normalizer"
	"go.trai.ch/isofreeze/internal/engine/renderer"
	"go.trai.ch/isofreeze/internal/engine/syncer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	inputLoader    ports.InputLoader
	managers       ports.PackageManagerFactory
	envFactory     ports.EnvironmentFactory
	store          ports.PinStateStore
	watcher        ports.Watcher
	logger         ports.Logger
	dir            string
	now            func() time.Time
	watchWindow    time.Duration
}

// New creates a new App instance working in the current directory.
func New(
	settingsLoader ports.SettingsLoader,
	inputLoader ports.InputLoader,
	managers ports.PackageManagerFactory,
	envFactory ports.EnvironmentFactory,
	store ports.PinStateStore,
	fileWatcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		inputLoader:    inputLoader,
		managers:       managers,
		envFactory:     envFactory,
		store:          store,
		watcher:        fileWatcher,
		logger:         log,
		dir:            ".",
		now:            time.Now,
		watchWindow:    watcher.DefaultDebounceWindow,
	}
}

// WithDir sets the directory that settings, inputs, outputs and state are relative to.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// WithClock replaces the clock used for pin state timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithWatchWindow sets how long Watch waits for file events to settle before pinning again.
func (a *App) WithWatchWindow(window time.Duration) *App {
	a.watchWindow = window
	return a
}

// ResolveOptions are shared by pin and sync.
// Empty values fall back to the settings file, then to built-in defaults.
type ResolveOptions struct {
	// Input is the requirements file or pyproject.toml. Empty selects the default file.
	Input string
	// Dependencies names optional dependency groups of a pyproject.toml.
	Dependencies []string
	// Python is the interpreter whose pip resolves and installs.
	Python string
	// PipArgs are passed to "pip install" when resolving. nil keeps the configured args.
	PipArgs []string
}

// PinOptions configuration for the Pin method.
type PinOptions struct {
	ResolveOptions
	Output   string
	Hashes   bool
	Isolated bool
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	ResolveOptions
	Isolated bool
}

// resolved is a ResolveOptions merged with settings.
type resolved struct {
	settings domain.Settings
	input    domain.InputSpec
	python   string
	pipArgs  []string
}

// Pin resolves the input and writes the pinned requirements file.
func (a *App) Pin(ctx context.Context, opts PinOptions) error {
	res, err := a.load(opts.ResolveOptions)
	if err != nil {
		return err
	}
	if isEmpty(res.input) {
		a.logger.Info("no dependencies to pin")
		return nil
	}

	python := res.python
	if opts.Isolated || res.settings.Isolated {
		scratch, cleanup, err := a.envFactory.Create(ctx, python)
		if cleanup != nil {
			defer a.cleanup(cleanup)
		}
		if err != nil {
			return err
		}
		python = scratch
	}

	records, found, err := a.report(ctx, a.managers.For(python), res)
	if err != nil {
		return err
	}
	if !found {
		a.logger.Info("no dependencies to pin")
		return nil
	}

	output := a.path(firstNonEmpty(opts.Output, res.settings.Output))
	lines := renderer.Render(records, opts.Hashes || res.settings.Hashes)
	if err := renderer.WriteFile(output, lines); err != nil {
		return err
	}

	unchanged, err := a.recordPin(output, lines, len(records))
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("pinned %d requirements in %s", len(records), output)
	if unchanged {
		msg += " (unchanged)"
	}
	a.logger.Info(msg)
	return nil
}

// Watch pins once, then pins again whenever the input or settings file changes.
// Pin failures are logged and watching continues. It returns nil when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts PinOptions) error {
	res, err := a.load(opts.ResolveOptions)
	if err != nil {
		return err
	}

	targets := []string{absPath(res.input.Path), absPath(a.path(domain.SettingsFileName))}
	var dirs []string
	for _, target := range targets {
		if dir := filepath.Dir(target); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(watchCtx, dirs); err != nil {
		return err
	}

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.watchWindow, func(paths []string) {
		select {
		case trigger <- paths:
		default:
			// A pin is already queued and will read the latest files.
		}
	})

	var g errgroup.Group
	events := a.watcher.Events()
	g.Go(func() error {
		for event := range events {
			if path := absPath(event.Path); slices.Contains(targets, path) {
				debouncer.Add(path)
			}
		}
		return nil
	})
	defer func() {
		cancel()
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
		}
		_ = g.Wait()
		debouncer.Stop()
	}()

	a.repin(ctx, opts)
	a.logger.Info(fmt.Sprintf("watching %s for changes", strings.Join(targets, ", ")))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			a.logger.Info(fmt.Sprintf("changed: %s", strings.Join(paths, ", ")))
			a.repin(ctx, opts)
		}
	}
}

func (a *App) repin(ctx context.Context, opts PinOptions) {
	if err := a.Pin(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// Sync resolves the input and makes the interpreter's environment match it.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	if opts.Isolated {
		return domain.ErrIsolatedSync
	}

	res, err := a.load(opts.ResolveOptions)
	if err != nil {
		return err
	}
	if isEmpty(res.input) {
		a.logger.Info("no dependencies to sync")
		return nil
	}

	pm := a.managers.For(res.python)
	records, found, err := a.report(ctx, pm, res)
	if err != nil {
		return err
	}
	if !found {
		a.logger.Info("no dependencies to sync")
		return nil
	}

	protected := domain.ProtectedSet(res.settings.Protected, res.input.Project)
	result, err := syncer.New(pm, a.logger).Apply(ctx, records, protected)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("synced environment: %d removed, %d installed", len(result.Removed), len(result.Installed)))
	return nil
}

func (a *App) load(opts ResolveOptions) (resolved, error) {
	settings, err := a.settingsLoader.LoadSettings(a.dir)
	if err != nil {
		return resolved{}, zerr.Wrap(err, "failed to load settings")
	}

	input, err := a.inputLoader.LoadInput(a.dir, opts.Input, opts.Dependencies)
	if err != nil {
		return resolved{}, err
	}

	pipArgs := settings.PipArgs
	if opts.PipArgs != nil {
		pipArgs = opts.PipArgs
	}

	return resolved{
		settings: settings,
		input:    input,
		python:   firstNonEmpty(opts.Python, settings.Python, domain.DefaultPython),
		pipArgs:  pipArgs,
	}, nil
}

// report checks the pip version, then resolves the input into pinned records.
func (a *App) report(ctx context.Context, pm ports.PackageManager, res resolved) ([]domain.PackageRecord, bool, error) {
	banner, err := pm.Version(ctx)
	if err != nil {
		return nil, false, err
	}
	if err := pip.ValidateVersion(banner); err != nil {
		return nil, false, err
	}

	data, err := pm.Report(ctx, res.input, res.pipArgs)
	if err != nil {
		return nil, false, err
	}

	records, found, err := normalizer.Normalize(data)
	if err != nil {
		return nil, false, zerr.With(err, "input", res.input.Path)
	}
	return records, found, nil
}

// recordPin stores the fingerprint of the written pin file.
// It reports whether the content matches the previously recorded pin.
func (a *App) recordPin(output string, lines []string, count int) (bool, error) {
	fingerprint := state.Fingerprint(renderer.Content(lines))

	prev, err := a.store.Get(a.dir, output)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring unreadable pin state for %s", output))
		prev = nil
	}

	err = a.store.Put(a.dir, domain.PinState{
		Output:      output,
		Fingerprint: fingerprint,
		Packages:    count,
		Timestamp:   a.now(),
	})
	if err != nil {
		return false, err
	}

	return prev != nil && prev.Fingerprint == fingerprint, nil
}

func (a *App) cleanup(fn func() error) {
	if err := fn(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to remove scratch environment: %v", err))
	}
}

func (a *App) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.dir, p)
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// isEmpty reports whether a pyproject.toml lists nothing to resolve.
func isEmpty(input domain.InputSpec) bool {
	return input.Kind == domain.InputPyProject && len(input.Requirements) == 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
