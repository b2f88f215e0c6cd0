package core

import "regexp"

// Earlier installer versions expanded package names through a template
// and, when expansion failed, created directories literally named after
// the unresolved token. Those strays are safe to delete on sight.
var legacyArtifactPattern = regexp.MustCompile(`^(\{\{.*\}\}|\$\{.*\})$`)

func IsLegacyArtifact(name string) bool {
	return legacyArtifactPattern.MatchString(name)
}

// FilterLegacyArtifacts returns the subset of entries that match the
// known-bad naming pattern, preserving input order.
func FilterLegacyArtifacts(entries []string) []string {
	var matches []string
	for _, entry := range entries {
		if IsLegacyArtifact(entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}
