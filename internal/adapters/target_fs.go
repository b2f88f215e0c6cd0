package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"skillsync/internal/ports"
)

type TargetFSAdapter struct{}

func NewTargetFSAdapter() TargetFSAdapter {
	return TargetFSAdapter{}
}

func (a TargetFSAdapter) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (a TargetFSAdapter) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create packages directory").
			WithCause(err)
	}
	return nil
}

// ListEntries returns the names of the directories directly under
// path. A missing path yields an empty listing, not an error, because
// verification runs against targets that may not have been created.
func (a TargetFSAdapter) ListEntries(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read packages directory").
			WithCause(err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (a TargetFSAdapter) RemoveEntry(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove directory entry").
			WithCause(err)
	}
	return nil
}

var _ ports.TargetDirPort = TargetFSAdapter{}
