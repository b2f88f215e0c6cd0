package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"skillsync/internal/ports"
	"skillsync/internal/types"
)

type CatalogFSAdapter struct{}

func NewCatalogFSAdapter() CatalogFSAdapter {
	return CatalogFSAdapter{}
}

// Enumerate resolves the catalog against the source tree. Flat entries
// come first in their declared order; nested members follow in
// directory iteration order. Flat names without a matching source
// directory are skipped, the catalog may list optional packages.
func (a CatalogFSAdapter) Enumerate(sourceRoot string, catalog types.Catalog) ([]types.PackageSource, error) {
	if strings.TrimSpace(sourceRoot) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source root is required")
	}
	var sources []types.PackageSource
	for _, name := range catalog.Flat {
		path := filepath.Join(sourceRoot, name)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			log.Debug().Str("package", name).Msg("flat catalog entry not present, skipping")
			continue
		}
		sources = append(sources, types.PackageSource{
			Name: filepath.Base(path),
			Path: path,
			Kind: types.CatalogKindFlat,
		})
	}
	for _, parent := range catalog.NestedParents {
		parentPath := filepath.Join(sourceRoot, parent)
		entries, err := os.ReadDir(parentPath)
		if err != nil {
			if os.IsNotExist(err) {
				log.Debug().Str("parent", parent).Msg("nested catalog parent not present, skipping")
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read nested catalog directory").
				WithCause(err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			// Identity is the leaf basename only. The target layout is
			// flat, so the parent name never becomes part of it.
			sources = append(sources, types.PackageSource{
				Name: entry.Name(),
				Path: filepath.Join(parentPath, entry.Name()),
				Kind: types.CatalogKindNestedMember,
			})
		}
	}
	return sources, nil
}

var _ ports.PackageEnumeratorPort = CatalogFSAdapter{}
