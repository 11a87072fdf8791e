package venv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/isofreeze/internal/adapters/venv"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFactory_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	base := t.TempDir()

	var envDir string
	gomock.InOrder(
		exec.EXPECT().Output(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd domain.Command) ([]byte, error) {
				require.Len(t, cmd.Args, 4)
				assert.Equal(t, []string{"python3", "-m", "venv"}, cmd.Args[:3])
				envDir = cmd.Args[3]
				return nil, nil
			}),
		exec.EXPECT().Output(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd domain.Command) ([]byte, error) {
				assert.Equal(t, []string{venv.Interpreter(envDir), "-m", "pip", "install", "-q", "-U", "pip"}, cmd.Args)
				return nil, nil
			}),
	)

	python, cleanup, err := venv.NewFactoryWithDir(exec, base).Create(context.Background(), "python3")
	require.NoError(t, err)
	assert.Equal(t, venv.Interpreter(envDir), python)
	assert.Equal(t, base, filepath.Dir(envDir))
	assert.Contains(t, filepath.Base(envDir), domain.ScratchEnvPrefix)

	require.DirExists(t, envDir)
	require.NoError(t, cleanup())
	_, statErr := os.Stat(envDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFactory_Create_VenvFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	base := t.TempDir()

	exec.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, errors.New("No module named venv"))

	_, cleanup, err := venv.NewFactoryWithDir(exec, base).Create(context.Background(), "python3")
	require.ErrorContains(t, err, domain.ErrScratchEnvFailed.Error())
	require.NotNil(t, cleanup)
	require.NoError(t, cleanup())

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFactory_Create_UpgradeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	base := t.TempDir()

	gomock.InOrder(
		exec.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, nil),
		exec.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline")),
	)

	_, cleanup, err := venv.NewFactoryWithDir(exec, base).Create(context.Background(), "python3")
	require.ErrorContains(t, err, domain.ErrScratchEnvFailed.Error())
	require.NoError(t, cleanup())
}

func TestFactory_Create_TempDirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	missing := filepath.Join(t.TempDir(), "missing")
	_, cleanup, err := venv.NewFactoryWithDir(exec, missing).Create(context.Background(), "python3")
	require.ErrorContains(t, err, domain.ErrScratchEnvFailed.Error())
	require.NoError(t, cleanup())
}
