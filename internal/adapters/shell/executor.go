// Package shell provides an os/exec based executor for package manager commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/isofreeze/internal/adapters/detector"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	mode detector.OutputMode
}

// NewExecutor creates a new Executor.
// In detector.ModeTerminal, streamed commands run on a pseudo-terminal.
func NewExecutor(mode detector.OutputMode) *Executor {
	return &Executor{mode: mode}
}

// Output runs the command and returns its captured stdout.
func (e *Executor) Output(ctx context.Context, c domain.Command) ([]byte, error) {
	cmd, err := build(ctx, c)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(err, c, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Run runs the command and waits for it, streaming its output.
func (e *Executor) Run(ctx context.Context, c domain.Command, stdout, stderr io.Writer) error {
	cmd, err := build(ctx, c)
	if err != nil {
		return err
	}

	if e.mode == detector.ModeTerminal {
		started, err := runPTY(cmd, stdout)
		if started || !errors.Is(err, pty.ErrUnsupported) {
			if err != nil {
				return commandError(err, c, "")
			}
			return nil
		}
		// No pty on this platform; a fresh exec.Cmd is required after a failed start.
		if cmd, err = build(ctx, c); err != nil {
			return err
		}
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return commandError(err, c, "")
	}
	return nil
}

func build(ctx context.Context, c domain.Command) (*exec.Cmd, error) {
	if len(c.Args) == 0 {
		return nil, zerr.Wrap(errors.New("empty command"), domain.ErrPackageManagerFailed.Error())
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...) //nolint:gosec // argv built by adapters
	cmd.Env = append(os.Environ(), c.Env...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	return cmd, nil
}

// runPTY starts cmd on a pseudo-terminal and copies its merged output to w.
// started reports whether the process was launched at all.
func runPTY(cmd *exec.Cmd, w io.Writer) (started bool, err error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return false, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master returns EIO once the child side closes.
		_, _ = io.Copy(w, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	_ = ptmx.Close()

	return true, waitErr
}

func commandError(err error, c domain.Command, stderr string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, domain.ErrPackageManagerFailed.Error()), "command", c.String())
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if s := strings.TrimSpace(stderr); s != "" {
		wrapped = zerr.With(wrapped, "stderr", s)
	}
	return wrapped
}
