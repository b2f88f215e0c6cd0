// Package shared provides common utility functions used across multiple
// packages in the skillsync codebase.
package shared

import "strings"

// OrDefault returns the trimmed value, or fallback when the value is
// empty or whitespace.
func OrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// FormatCause trims an underlying error message for inclusion in
// per-package failure details.
func FormatCause(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimSpace(err.Error())
}
