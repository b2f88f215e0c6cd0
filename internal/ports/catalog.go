package ports

import "skillsync/internal/types"

type CatalogFilePort interface {
	LoadCatalog(path string) (types.Catalog, error)
}

type PackageEnumeratorPort interface {
	Enumerate(sourceRoot string, catalog types.Catalog) ([]types.PackageSource, error)
}
