package app

import (
	"time"

	"skillsync/internal/adapters"
	"skillsync/internal/ports"
)

type Service struct {
	TargetResolver ports.TargetResolverPort
	TargetDir      ports.TargetDirPort
	CatalogFile    ports.CatalogFilePort
	Enumerator     ports.PackageEnumeratorPort
	Installer      ports.PackageInstallerPort
	Clock          func() time.Time
}

func NewService() Service {
	return Service{
		TargetResolver: adapters.NewTargetResolverAdapter(),
		TargetDir:      adapters.NewTargetFSAdapter(),
		CatalogFile:    adapters.NewCatalogFileAdapter(),
		Enumerator:     adapters.NewCatalogFSAdapter(),
		Installer:      adapters.NewInstallerFSAdapter(),
		Clock:          time.Now,
	}
}
