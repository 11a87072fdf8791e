package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/isofreeze/internal/adapters/watcher"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.trai.ch/isofreeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "requirements.in")
	require.NoError(t, os.WriteFile(target, []byte("cowsay\n"), 0o600))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, []string{dir, dir + string(filepath.Separator)}))
	t.Cleanup(func() { _ = w.Stop() })

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			if filepath.Base(event.Path) == "requirements.in" {
				got <- event
				return
			}
		}
	}()

	require.NoError(t, os.WriteFile(target, []byte("cowsay\ntomli\n"), 0o600))

	select {
	case event := <-got:
		assert.Equal(t, target, event.Path)
		assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a write event")
	}
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := watcher.NewWatcher(nil)
	require.NoError(t, w.Start(ctx, []string{t.TempDir()}))
	t.Cleanup(func() { _ = w.Stop() })

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after cancel")
	}
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w := watcher.NewWatcher(nil)

	err := w.Start(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	w := watcher.NewWatcher(nil)
	assert.NoError(t, w.Stop())
}
