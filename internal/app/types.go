package app

import "skillsync/internal/types"

type InstallRequest struct {
	SourceRoot  string
	HostName    string
	CatalogPath string
}

type InstallResult struct {
	Report        types.InstallationReport
	PackagesDir   string
	LegacyRemoved []string
}

type PlanRequest struct {
	SourceRoot  string
	HostName    string
	CatalogPath string
}

type PlanResult struct {
	PackagesDir string
	Packages    []types.PackageSource
}

type VerifyRequest struct {
	SourceRoot  string
	HostName    string
	CatalogPath string
}

type VerifyResult struct {
	PackagesDir string
	Missing     []string
	Extra       []string
}
