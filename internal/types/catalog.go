package types

// Catalog declares where installable packages live in the source
// collection: an explicit list of top-level directory names, plus
// parent directories whose immediate subdirectories are each a package
// installed under its own basename.
type Catalog struct {
	Flat          []string `yaml:"flat,omitempty"`
	NestedParents []string `yaml:"nested_parents,omitempty"`
}

// DefaultCatalog is the catalog shipped with the source collection.
// Flat names that do not exist on disk are skipped during enumeration,
// so optional packages may stay listed here.
func DefaultCatalog() Catalog {
	return Catalog{
		Flat: []string{
			"artifacts-builder",
			"canvas-design",
			"webapp-testing",
		},
		NestedParents: []string{
			"document-skills",
		},
	}
}
