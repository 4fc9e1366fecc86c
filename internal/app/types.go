package app

import "alias-profiles/internal/types"

type ResolveRequest struct {
	DepsFile   string
	Profiles   []string
	MainPath   string
	OutputPath string
}

type ResolveResult struct {
	Profiles       []types.ProfileKey
	SelectedPath   types.ProfilePath
	MatchedAliases []types.AliasKey
	ExtraOpts      map[string]any
	Invocation     types.Invocation
	OutputPath     string
}

type ValidateRequest struct {
	DepsFile string
	Profiles []string
}

type ValidateResult struct {
	Profiles []types.ProfileKey
	Combined types.CombinedProfile
}

type ProfilesRequest struct {
	DepsFile string
}

type ProfilesResult struct {
	Profiles []types.ProfileSummary
}
