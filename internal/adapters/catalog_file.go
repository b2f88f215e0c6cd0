package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"skillsync/internal/ports"
	"skillsync/internal/types"
)

type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

// LoadCatalog reads a catalog declaration from a YAML file. An empty
// path selects the built-in default catalog.
func (a CatalogFileAdapter) LoadCatalog(path string) (types.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return types.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	if len(catalog.Flat) == 0 && len(catalog.NestedParents) == 0 {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog declares no packages")
	}
	return catalog, nil
}

var _ ports.CatalogFilePort = CatalogFileAdapter{}
