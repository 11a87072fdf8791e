// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/isofreeze/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Output runs the command and returns its captured stdout.
	//
	// A non-zero exit is returned as an error carrying the exit code and stderr.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)

	// Run runs the command, streaming its output to stdout and stderr.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
