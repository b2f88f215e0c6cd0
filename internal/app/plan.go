package app

import (
	"context"

	"skillsync/internal/core"
)

// Plan is the dry-run counterpart of Install: it resolves the target
// layout and enumerates the catalog but writes nothing.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	cfg, catalog, err := s.resolveRun(req.SourceRoot, req.HostName, req.CatalogPath)
	if err != nil {
		return PlanResult{}, err
	}
	sources, err := s.Enumerator.Enumerate(cfg.SourceRoot, catalog)
	if err != nil {
		return PlanResult{}, err
	}
	if err := core.ValidatePlan(ctx, sources); err != nil {
		return PlanResult{}, err
	}
	return PlanResult{
		PackagesDir: cfg.Layout.PackagesDir,
		Packages:    sources,
	}, nil
}
