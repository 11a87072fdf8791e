package ports

import "context"

// EnvironmentFactory creates throwaway interpreter environments.
//
// Implementations must make the returned cleanup safe to call on every exit path,
// including after a failed Create.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentFactory interface {
	// Create builds a scratch environment from basePython and returns its interpreter path.
	Create(ctx context.Context, basePython string) (python string, cleanup func() error, err error)
}
