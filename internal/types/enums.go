package types

type CatalogKind string

const (
	CatalogKindFlat         CatalogKind = "flat"
	CatalogKindNestedMember CatalogKind = "nested-member"
)

type InstallStatus string

const (
	InstallStatusInstalled     InstallStatus = "installed"
	InstallStatusSourceMissing InstallStatus = "source-missing"
	InstallStatusCopyFailed    InstallStatus = "copy-failed"
)
