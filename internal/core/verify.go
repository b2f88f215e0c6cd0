package core

import (
	"skillsync/internal/types"
)

// VerifyReport cross-references the attempted outcomes against the
// actual target directory listing. An outcome recorded as installed
// whose directory is not present is downgraded to a copy failure, so a
// silent partial copy cannot masquerade as success.
func VerifyReport(report types.InstallationReport, actual []string) types.InstallationReport {
	present := map[string]struct{}{}
	for _, name := range actual {
		present[name] = struct{}{}
	}
	verified := types.InstallationReport{TargetDir: report.TargetDir}
	for _, outcome := range report.Attempted {
		if outcome.Status == types.InstallStatusInstalled {
			if _, ok := present[outcome.Package]; !ok {
				outcome = types.InstallOutcome{
					Package: outcome.Package,
					Status:  types.InstallStatusCopyFailed,
					Detail:  "missing after copy",
				}
			}
		}
		verified.Attempted = append(verified.Attempted, outcome)
	}
	return verified
}

// CompareListing reports which expected package names are absent from
// the target directory and which target entries belong to no expected
// package. Legacy artifacts are already gone by the time this runs, so
// extras are genuine strays.
func CompareListing(expected []string, actual []string) (missing []string, extra []string) {
	expectedSet := map[string]struct{}{}
	for _, name := range expected {
		expectedSet[name] = struct{}{}
	}
	actualSet := map[string]struct{}{}
	for _, name := range actual {
		actualSet[name] = struct{}{}
	}
	for _, name := range expected {
		if _, ok := actualSet[name]; !ok {
			missing = append(missing, name)
		}
	}
	for _, name := range actual {
		if _, ok := expectedSet[name]; !ok {
			extra = append(extra, name)
		}
	}
	return missing, extra
}
