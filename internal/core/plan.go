package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"skillsync/internal/types"
)

// ValidatePlan checks the enumerated package set before any copy
// starts. The target layout is flat, so two packages resolving to the
// same basename would silently overwrite each other mid-run.
func ValidatePlan(ctx context.Context, sources []types.PackageSource) error {
	seen := map[string]types.PackageSource{}
	for _, source := range sources {
		assert.NotEmpty(ctx, source.Name, "package name must be set during enumeration")
		assert.NotEmpty(ctx, source.Path, "package path must be set during enumeration")
		if previous, ok := seen[source.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package name collision: %s (%s and %s)", source.Name, previous.Path, source.Path))
		}
		seen[source.Name] = source
	}
	log.Ctx(ctx).Debug().Int("packages", len(sources)).Msg("install plan validated")
	return nil
}
