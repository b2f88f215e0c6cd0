package ports

import (
	"context"

	"skillsync/internal/types"
)

// PackageInstallerPort copies one package source into the target
// packages directory, replacing any existing contents.
type PackageInstallerPort interface {
	Install(ctx context.Context, source types.PackageSource, packagesDir string) error
}
