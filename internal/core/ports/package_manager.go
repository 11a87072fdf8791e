package ports

import (
	"context"

	"go.trai.ch/isofreeze/internal/core/domain"
)

// PackageManager is the external package manager driving resolution and installation.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Version returns the raw version banner of the package manager.
	Version(ctx context.Context) (string, error)

	// Report resolves the input without installing anything and returns the raw report.
	Report(ctx context.Context, input domain.InputSpec, extraArgs []string) ([]byte, error)

	// ListInstalled snapshots the packages present in the target environment.
	ListInstalled(ctx context.Context) ([]domain.InstalledPackage, error)

	// Uninstall removes all named packages in a single invocation.
	Uninstall(ctx context.Context, names []string) error

	// Install installs the given "name==version" requirements in a single invocation.
	// With upgrade set, packages present at another version are replaced.
	Install(ctx context.Context, requirements []string, upgrade bool) error
}

// PackageManagerFactory binds a PackageManager to a specific interpreter.
type PackageManagerFactory interface {
	// For returns a PackageManager operating on the given interpreter.
	For(python string) PackageManager
}
