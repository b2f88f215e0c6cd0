package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"skillsync/internal/core"
	"skillsync/internal/shared"
	"skillsync/internal/types"
)

// Install runs the full synchronization pipeline: resolve target,
// check host presence, ensure the packages directory, clean legacy
// artifacts, enumerate the catalog, copy each package, and verify the
// result. A failing package never aborts the batch; the report carries
// the degraded outcome instead.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	started := timeNow(s.Clock)
	cfg, catalog, err := s.resolveRun(req.SourceRoot, req.HostName, req.CatalogPath)
	if err != nil {
		return InstallResult{}, err
	}
	if !s.TargetDir.Exists(cfg.Layout.HostConfigRoot) {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("host configuration directory %s does not exist: install the host application first, then rerun", cfg.Layout.HostConfigRoot))
	}
	if err := s.TargetDir.EnsureDir(cfg.Layout.PackagesDir); err != nil {
		return InstallResult{}, err
	}
	removed := s.cleanupLegacyArtifacts(cfg.Layout.PackagesDir)

	sources, err := s.Enumerator.Enumerate(cfg.SourceRoot, catalog)
	if err != nil {
		return InstallResult{}, err
	}
	if err := core.ValidatePlan(ctx, sources); err != nil {
		return InstallResult{}, err
	}

	report := types.InstallationReport{TargetDir: cfg.Layout.PackagesDir}
	for _, source := range sources {
		log.Info().
			Str("package", source.Name).
			Str("kind", string(source.Kind)).
			Msg("installing package")
		outcome := s.installOne(ctx, source, cfg.Layout.PackagesDir)
		if outcome.Status != types.InstallStatusInstalled && ctx.Err() != nil {
			return InstallResult{}, ctx.Err()
		}
		report.Attempted = append(report.Attempted, outcome)
	}

	actual, err := s.TargetDir.ListEntries(cfg.Layout.PackagesDir)
	if err != nil {
		return InstallResult{}, err
	}
	report = core.VerifyReport(report, actual)

	log.Info().
		Int("installed", report.SucceededCount()).
		Int("failed", report.FailedCount()).
		Dur("elapsed", timeNow(s.Clock).Sub(started)).
		Msg("install run completed")
	return InstallResult{
		Report:        report,
		PackagesDir:   cfg.Layout.PackagesDir,
		LegacyRemoved: removed,
	}, nil
}

func (s Service) installOne(ctx context.Context, source types.PackageSource, packagesDir string) types.InstallOutcome {
	err := s.Installer.Install(ctx, source, packagesDir)
	switch {
	case err == nil:
		return types.InstallOutcome{
			Package: source.Name,
			Status:  types.InstallStatusInstalled,
		}
	case errbuilder.CodeOf(err) == errbuilder.CodeNotFound:
		// Enumerated but gone at copy time, raced with an external
		// deletion.
		log.Warn().Str("package", source.Name).Err(err).Msg("package source missing")
		return types.InstallOutcome{
			Package: source.Name,
			Status:  types.InstallStatusSourceMissing,
			Detail:  shared.FormatCause(err),
		}
	default:
		log.Warn().Str("package", source.Name).Err(err).Msg("package copy failed")
		return types.InstallOutcome{
			Package: source.Name,
			Status:  types.InstallStatusCopyFailed,
			Detail:  shared.FormatCause(err),
		}
	}
}

// cleanupLegacyArtifacts removes placeholder-named directories left by
// earlier buggy installer versions. Best-effort: a failed removal only
// leaves a harmless stray, so it is logged and the run continues.
func (s Service) cleanupLegacyArtifacts(packagesDir string) []string {
	entries, err := s.TargetDir.ListEntries(packagesDir)
	if err != nil {
		log.Warn().Err(err).Msg("legacy artifact scan failed")
		return nil
	}
	var removed []string
	for _, name := range core.FilterLegacyArtifacts(entries) {
		if err := s.TargetDir.RemoveEntry(filepath.Join(packagesDir, name)); err != nil {
			log.Warn().Str("entry", name).Err(err).Msg("failed to remove legacy artifact")
			continue
		}
		log.Info().Str("entry", name).Msg("removed legacy artifact")
		removed = append(removed, name)
	}
	return removed
}

func (s Service) resolveRun(sourceRoot string, hostName string, catalogPath string) (types.RunConfig, types.Catalog, error) {
	root := shared.OrDefault(sourceRoot, ".")
	layout, err := s.TargetResolver.Resolve(hostName)
	if err != nil {
		return types.RunConfig{}, types.Catalog{}, err
	}
	catalog, err := s.CatalogFile.LoadCatalog(catalogPath)
	if err != nil {
		return types.RunConfig{}, types.Catalog{}, err
	}
	return types.RunConfig{SourceRoot: root, Layout: layout}, catalog, nil
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}
