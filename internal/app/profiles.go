package app

import (
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"alias-profiles/internal/types"
)

func (s Service) Profiles(req ProfilesRequest) (ProfilesResult, error) {
	depsFile := strings.TrimSpace(req.DepsFile)
	if depsFile == "" {
		return ProfilesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("deps file path is required")
	}
	processed, err := s.Project.LoadProject(depsFile, types.DefaultProfilePath)
	if err != nil {
		return ProfilesResult{}, err
	}

	keys := make([]types.ProfileKey, 0, len(processed.RootDeps.Profiles))
	for key := range processed.RootDeps.Profiles {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	summaries := make([]types.ProfileSummary, 0, len(keys))
	for _, key := range keys {
		profile := processed.RootDeps.Profiles[key]
		path := profile.Path
		if path == types.ProfilePathUnset {
			path = types.DefaultProfilePath
		}
		opts := make([]string, 0, len(profile.ExtraOpts))
		for opt := range profile.ExtraOpts {
			opts = append(opts, opt)
		}
		sort.Strings(opts)
		summaries = append(summaries, types.ProfileSummary{
			Key:       key,
			Path:      path,
			AliasNS:   profile.AliasNS,
			AliasName: profile.AliasName,
			ExtraOpts: opts,
		})
	}
	return ProfilesResult{Profiles: summaries}, nil
}
