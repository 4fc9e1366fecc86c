package core

import (
	"context"
	"maps"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"alias-profiles/internal/types"
)

type ProfileResolver struct{}

func NewProfileResolver() ProfileResolver {
	return ProfileResolver{}
}

// WithProfiles annotates processed with the aliases selected by keys and
// the extra options they contribute. The main deps in the result are always
// cleansed of profile configuration. Failures are returned wrapped in a
// *types.ProfileResolutionError.
func (r ProfileResolver) WithProfiles(ctx context.Context, processed types.ProcessedDeps, keys []types.ProfileKey) (types.ProcessedDeps, error) {
	out, err := r.resolve(ctx, processed, keys)
	if err != nil {
		return types.ProcessedDeps{}, &types.ProfileResolutionError{
			Context: types.ProfileResolutionContext,
			Cause:   err,
		}
	}
	return out, nil
}

func (r ProfileResolver) resolve(ctx context.Context, processed types.ProcessedDeps, keys []types.ProfileKey) (types.ProcessedDeps, error) {
	out := types.ProcessedDeps{
		MainDeps:    CleanseDeps(processed.MainDeps),
		RootDeps:    processed.RootDeps,
		SubrepoDeps: maps.Clone(processed.SubrepoDeps),
	}
	profiles := processed.RootDeps.Profiles

	if len(keys) == 0 {
		out.MatchedAliases = []types.AliasKey{}
		out.ExtraOpts = map[string]any{}
		log.Ctx(ctx).Debug().Msg("no profiles requested")
		return out, nil
	}

	combined := CombineActiveProfiles(profiles, keys)
	if err := ValidateCombinedProfile(combined, keys); err != nil {
		return types.ProcessedDeps{}, err
	}
	assert.NotEmpty(ctx, string(combined.Path), "combined profile path must be set")

	target := selectDeps(out, combined.Path)
	out.SelectedPath = combined.Path
	out.MatchedAliases = MatchDepsAliases(target.Aliases, combined.AliasNS, combined.AliasName)
	out.ExtraOpts = combined.ExtraOpts

	log.Ctx(ctx).Debug().
		Str("path", string(combined.Path)).
		Strs("alias_ns", combined.AliasNS).
		Strs("alias_name", combined.AliasName).
		Int("matched", len(out.MatchedAliases)).
		Msg("profiles resolved")
	return out, nil
}

// selectDeps picks the dependency set a combined profile matches against.
// An unknown subrepo path yields an empty set.
func selectDeps(processed types.ProcessedDeps, path types.ProfilePath) types.DepsSet {
	if path == types.DefaultProfilePath {
		return processed.MainDeps
	}
	return processed.SubrepoDeps[path]
}
