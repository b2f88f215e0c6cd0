package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetFSExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	adapter := NewTargetFSAdapter()
	assert.True(t, adapter.Exists(dir))
	assert.False(t, adapter.Exists(filepath.Join(dir, "missing")))
	assert.False(t, adapter.Exists(file), "plain file is not a directory")
}

func TestTargetFSEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "host", "skills")
	adapter := NewTargetFSAdapter()

	require.NoError(t, adapter.EnsureDir(dir))
	require.NoError(t, adapter.EnsureDir(dir))
	assert.True(t, adapter.Exists(dir))
}

func TestTargetFSListEntriesDirectoriesOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "alpha"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "beta"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644))

	adapter := NewTargetFSAdapter()
	entries, err := adapter.ListEntries(dir)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"alpha", "beta"}, entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestTargetFSListEntriesMissingDir(t *testing.T) {
	adapter := NewTargetFSAdapter()
	entries, err := adapter.ListEntries(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestTargetFSRemoveEntry(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "{{skill_name}}")
	require.NoError(t, os.MkdirAll(filepath.Join(victim, "nested"), 0755))

	adapter := NewTargetFSAdapter()
	require.NoError(t, adapter.RemoveEntry(victim))
	_, err := os.Stat(victim)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, adapter.RemoveEntry(victim), "removing an absent entry is a no-op")
}
