package ports

import "skillsync/internal/types"

// TargetResolverPort maps the running platform to the host
// application's configuration root and packages directory.
type TargetResolverPort interface {
	Resolve(hostName string) (types.TargetLayout, error)
}

// TargetDirPort covers the filesystem operations the install pipeline
// performs on the resolved target layout.
type TargetDirPort interface {
	Exists(path string) bool
	EnsureDir(path string) error
	ListEntries(path string) ([]string, error)
	RemoveEntry(path string) error
}
