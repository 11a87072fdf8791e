// Package syncer reconciles an environment's installed packages with a pin set.
package syncer

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes what a sync changed.
type Result struct {
	// Removed lists the packages uninstalled, in installed order.
	// It stays empty when the uninstall request fails.
	Removed []string

	// Installed lists the requirements installed by a successful install request.
	Installed []string
}

// Syncer applies a desired package set to the environment behind a PackageManager.
type Syncer struct {
	pm     ports.PackageManager
	logger ports.Logger
}

// New creates a Syncer.
func New(pm ports.PackageManager, logger ports.Logger) *Syncer {
	return &Syncer{pm: pm, logger: logger}
}

// Apply removes installed packages missing from desired, then installs desired.
//
// The installed state is read once. Removal is a single batch and always runs
// before the single install batch. The first failure aborts the sync; removals
// already applied are not rolled back.
func (s *Syncer) Apply(ctx context.Context, desired []domain.PackageRecord, protected []string) (Result, error) {
	installed, err := s.pm.ListInstalled(ctx)
	if err != nil {
		return Result{}, zerr.Wrap(err, domain.ErrSyncFailed.Error())
	}

	var res Result

	if extra := Diff(installed, desired, protected); len(extra) > 0 {
		s.logger.Info(fmt.Sprintf("removing %d package(s): %s", len(extra), strings.Join(extra, ", ")))
		if err := s.pm.Uninstall(ctx, extra); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrSyncFailed.Error()), "step", "uninstall")
			return res, zerr.With(err, "packages", strings.Join(extra, " "))
		}
		res.Removed = extra
	}

	requirements := Requirements(desired)
	s.logger.Info(fmt.Sprintf("installing %d package(s)", len(requirements)))
	if err := s.pm.Install(ctx, requirements, true); err != nil {
		return res, zerr.With(zerr.Wrap(err, domain.ErrSyncFailed.Error()), "step", "install")
	}
	res.Installed = requirements

	return res, nil
}
