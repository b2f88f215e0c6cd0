package app

import (
	"context"

	"skillsync/internal/core"
)

// Verify cross-checks the current packages directory against the
// catalog without installing anything: catalog entries absent from the
// target are reported as missing, target directories belonging to no
// catalog entry as extra.
func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	cfg, catalog, err := s.resolveRun(req.SourceRoot, req.HostName, req.CatalogPath)
	if err != nil {
		return VerifyResult{}, err
	}
	sources, err := s.Enumerator.Enumerate(cfg.SourceRoot, catalog)
	if err != nil {
		return VerifyResult{}, err
	}
	if err := core.ValidatePlan(ctx, sources); err != nil {
		return VerifyResult{}, err
	}
	actual, err := s.TargetDir.ListEntries(cfg.Layout.PackagesDir)
	if err != nil {
		return VerifyResult{}, err
	}
	var expected []string
	for _, source := range sources {
		expected = append(expected, source.Name)
	}
	missing, extra := core.CompareListing(expected, actual)
	return VerifyResult{
		PackagesDir: cfg.Layout.PackagesDir,
		Missing:     missing,
		Extra:       extra,
	}, nil
}
