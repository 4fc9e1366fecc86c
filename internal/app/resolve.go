package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"alias-profiles/internal/core"
	"alias-profiles/internal/shared"
	"alias-profiles/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	depsFile := strings.TrimSpace(req.DepsFile)
	if depsFile == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("deps file path is required")
	}
	mainPath := types.DefaultProfilePath
	if trimmed := strings.TrimSpace(req.MainPath); trimmed != "" {
		mainPath = types.ProfilePath(trimmed)
	}
	processed, err := s.Project.LoadProject(depsFile, mainPath)
	if err != nil {
		return ResolveResult{}, err
	}

	keys := shared.ProfileKeys(req.Profiles)
	resolver := core.NewProfileResolver()
	planner := core.NewInvocationPlanner()
	resolved, err := resolver.WithProfiles(ctx, processed, keys)
	if err != nil {
		return ResolveResult{}, err
	}
	invocation, err := planner.Plan(ctx, resolved)
	if err != nil {
		return ResolveResult{}, err
	}

	result := ResolveResult{
		Profiles:       keys,
		SelectedPath:   resolved.SelectedPath,
		MatchedAliases: resolved.MatchedAliases,
		ExtraOpts:      resolved.ExtraOpts,
		Invocation:     invocation,
	}
	if outputPath := strings.TrimSpace(req.OutputPath); outputPath != "" {
		if err := s.Output.WriteResolution(outputPath, types.ResolutionOutput{
			Profiles:   keys,
			Processed:  resolved,
			Invocation: invocation,
		}); err != nil {
			return ResolveResult{}, err
		}
		result.OutputPath = outputPath
	}
	log.Info().
		Int("profiles", len(keys)).
		Int("matched", len(result.MatchedAliases)).
		Msg("resolution complete")
	return result, nil
}
