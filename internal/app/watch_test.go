package app_test

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/isofreeze/internal/app"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func channelEvents(ch <-chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range ch {
			if !yield(event) {
				return
			}
		}
	}
}

func (f *fixture) expectPins(times int) {
	input := f.requirementsInput()
	output := filepath.Join(f.dir, "requirements.txt")

	f.settings.EXPECT().LoadSettings(f.dir).Return(domain.DefaultSettings(), nil).Times(times + 1)
	f.inputs.EXPECT().LoadInput(f.dir, "", nil).Return(input, nil).Times(times + 1)
	f.managers.EXPECT().For("python3").Return(f.pm).Times(times)
	f.pm.EXPECT().Version(gomock.Any()).Return(pipBanner, nil).Times(times)
	f.pm.EXPECT().Report(gomock.Any(), input, nil).Return([]byte(sampleReport), nil).Times(times)
	f.store.EXPECT().Get(f.dir, output).Return(nil, nil).Times(times)
	f.store.EXPECT().Put(f.dir, gomock.Any()).Return(nil).Times(times)
}

func TestApp_Watch_RepinsOnInputChange(t *testing.T) {
	f := newFixture(t)
	f.app.WithWatchWindow(10 * time.Millisecond)
	input := f.requirementsInput()
	settingsPath := filepath.Join(f.dir, domain.SettingsFileName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan ports.WatchEvent, 2)
	f.expectPins(2)
	f.watcher.EXPECT().Start(gomock.Any(), []string{f.dir}).Return(nil)
	f.watcher.EXPECT().Events().Return(channelEvents(events))
	f.watcher.EXPECT().Stop().DoAndReturn(func() error {
		close(events)
		return nil
	})

	var pins int
	var messages []string
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes().Do(func(msg string) {
		messages = append(messages, msg)
		if !strings.HasPrefix(msg, "pinned ") {
			return
		}
		pins++
		switch pins {
		case 1:
			events <- ports.WatchEvent{Path: filepath.Join(f.dir, "requirements.txt"), Operation: ports.OpWrite}
			events <- ports.WatchEvent{Path: input.Path, Operation: ports.OpWrite}
		case 2:
			cancel()
		}
	})

	require.NoError(t, f.app.Watch(ctx, app.PinOptions{}))

	assert.Equal(t, 2, pins)
	assert.Contains(t, messages, "watching "+input.Path+", "+settingsPath+" for changes")
	assert.Contains(t, messages, "changed: "+input.Path)
}

func TestApp_Watch_LogsPinFailures(t *testing.T) {
	f := newFixture(t)
	input := f.requirementsInput()
	pipErr := errors.New("pip exploded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan ports.WatchEvent)
	f.settings.EXPECT().LoadSettings(f.dir).Return(domain.DefaultSettings(), nil).Times(2)
	f.inputs.EXPECT().LoadInput(f.dir, "", nil).Return(input, nil).Times(2)
	f.managers.EXPECT().For("python3").Return(f.pm)
	f.pm.EXPECT().Version(gomock.Any()).Return("", pipErr)
	f.watcher.EXPECT().Start(gomock.Any(), []string{f.dir}).Return(nil)
	f.watcher.EXPECT().Events().Return(channelEvents(events))
	f.watcher.EXPECT().Stop().DoAndReturn(func() error {
		close(events)
		return nil
	})
	f.logger.EXPECT().Error(pipErr)
	f.logger.EXPECT().Info(gomock.Any()).Do(func(string) { cancel() })

	require.NoError(t, f.app.Watch(ctx, app.PinOptions{}))
}

func TestApp_Watch_StartFailure(t *testing.T) {
	f := newFixture(t)
	startErr := errors.New("too many open files")

	f.settings.EXPECT().LoadSettings(f.dir).Return(domain.DefaultSettings(), nil)
	f.inputs.EXPECT().LoadInput(f.dir, "", nil).Return(f.requirementsInput(), nil)
	f.watcher.EXPECT().Start(gomock.Any(), []string{f.dir}).Return(startErr)

	err := f.app.Watch(context.Background(), app.PinOptions{})
	require.ErrorIs(t, err, startErr)
}

func TestApp_Watch_LoadFailure(t *testing.T) {
	f := newFixture(t)

	f.settings.EXPECT().LoadSettings(f.dir).Return(domain.DefaultSettings(), nil)
	f.inputs.EXPECT().LoadInput(f.dir, "", nil).Return(domain.InputSpec{}, domain.ErrNoInputFile)

	err := f.app.Watch(context.Background(), app.PinOptions{})
	require.ErrorContains(t, err, domain.ErrNoInputFile.Error())
}
