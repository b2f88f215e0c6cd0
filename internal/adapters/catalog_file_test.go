package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"skillsync/internal/types"
)

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "flat:\n  - alpha\n  - beta\nnested_parents:\n  - document-skills\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	adapter := NewCatalogFileAdapter()
	catalog, err := adapter.LoadCatalog(path)
	require.NoError(t, err)

	expected := types.Catalog{
		Flat:          []string{"alpha", "beta"},
		NestedParents: []string{"document-skills"},
	}
	if diff := cmp.Diff(expected, catalog); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogEmptyPathUsesDefault(t *testing.T) {
	adapter := NewCatalogFileAdapter()
	catalog, err := adapter.LoadCatalog("")
	require.NoError(t, err)
	if diff := cmp.Diff(types.DefaultCatalog(), catalog); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("flat: {broken"), 0644))
	emptyDoc := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyDoc, []byte("{}"), 0644))

	tests := []struct {
		name     string
		path     string
		wantCode errbuilder.ErrCode
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), wantCode: errbuilder.CodeNotFound},
		{name: "malformed yaml", path: badYAML, wantCode: errbuilder.CodeInvalidArgument},
		{name: "no packages declared", path: emptyDoc, wantCode: errbuilder.CodeInvalidArgument},
	}
	adapter := NewCatalogFileAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.LoadCatalog(tt.path)
			require.Error(t, err)
			if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected error code (-want +got):\n%s", diff)
			}
		})
	}
}
