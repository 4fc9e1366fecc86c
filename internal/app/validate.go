package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"alias-profiles/internal/core"
	"alias-profiles/internal/shared"
	"alias-profiles/internal/types"
)

// Validate combines the requested profiles and checks that the combination
// narrows the alias selection. Unlike Resolve, an empty request is rejected.
func (s Service) Validate(_ context.Context, req ValidateRequest) (ValidateResult, error) {
	depsFile := strings.TrimSpace(req.DepsFile)
	if depsFile == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("deps file path is required")
	}
	keys := shared.ProfileKeys(req.Profiles)
	if len(keys) == 0 {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one profile is required")
	}
	processed, err := s.Project.LoadProject(depsFile, types.DefaultProfilePath)
	if err != nil {
		return ValidateResult{}, err
	}
	combined := core.CombineActiveProfiles(processed.RootDeps.Profiles, keys)
	if err := core.ValidateCombinedProfile(combined, keys); err != nil {
		return ValidateResult{}, &types.ProfileResolutionError{
			Context: types.ProfileResolutionContext,
			Cause:   err,
		}
	}
	return ValidateResult{Profiles: keys, Combined: combined}, nil
}
