package types

// PackageSource is one installable package discovered during catalog
// enumeration. Name is always the basename of Path, regardless of how
// deeply the package sits in the source tree.
type PackageSource struct {
	Name string
	Path string
	Kind CatalogKind
}

// InstallOutcome records the result of one install attempt.
type InstallOutcome struct {
	Package string
	Status  InstallStatus
	Detail  string
}

// InstallationReport collects the outcomes of a single run. It is
// built incrementally by the installer loop and consumed by the
// verifier; nothing is persisted to disk.
type InstallationReport struct {
	Attempted []InstallOutcome
	TargetDir string
}

func (r InstallationReport) SucceededCount() int {
	count := 0
	for _, outcome := range r.Attempted {
		if outcome.Status == InstallStatusInstalled {
			count++
		}
	}
	return count
}

func (r InstallationReport) FailedCount() int {
	count := 0
	for _, outcome := range r.Attempted {
		if outcome.Status != InstallStatusInstalled {
			count++
		}
	}
	return count
}

// TargetLayout is the resolved, OS-specific directory structure the
// host application reads packages from. PackagesDir is always a direct
// child of HostConfigRoot.
type TargetLayout struct {
	HostConfigRoot string
	PackagesDir    string
}

// RunConfig is the explicit per-run configuration threaded through
// every component, resolved once at startup.
type RunConfig struct {
	SourceRoot string
	Layout     TargetLayout
}
