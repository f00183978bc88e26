package ports

import (
	"context"

	"devrando/internal/types"
)

// InstalledPackagesPort reports the installed dependency tree as seen by the
// package manager, independent of the manifest.
type InstalledPackagesPort interface {
	ListInstalledPackages(ctx context.Context, projectDir string) ([]types.InstalledPackage, error)
}

type ProjectReaderPort interface {
	ReadManifest(path string) (types.PackageManifest, error)
	ReadConfig(path string) (types.BundleConfig, error)
}

type ProjectWriterPort interface {
	// EnsureTarget fails when dir exists, is non-empty and force is false.
	EnsureTarget(dir string, force bool) error
	WriteFiles(dir string, files map[string]string) ([]string, error)
}
