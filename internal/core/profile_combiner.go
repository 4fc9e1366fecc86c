package core

import (
	"alias-profiles/internal/types"
)

// CombineActiveProfiles folds the requested profiles, in request order, into
// a single combined profile. Keys without a definition contribute nothing.
func CombineActiveProfiles(profiles map[types.ProfileKey]types.ProfileDefinition, keys []types.ProfileKey) types.CombinedProfile {
	combined := types.NewCombinedProfile()
	for _, key := range keys {
		profile, ok := profiles[key]
		if !ok {
			continue
		}
		combined = mergeProfile(combined, profile)
	}
	return combined
}

func mergeProfile(acc types.CombinedProfile, profile types.ProfileDefinition) types.CombinedProfile {
	next := types.CombinedProfile{
		Path:      acc.Path,
		AliasNS:   concatStrings(acc.AliasNS, profile.AliasNS),
		AliasName: concatStrings(acc.AliasName, profile.AliasName),
		ExtraOpts: make(map[string]any, len(acc.ExtraOpts)+len(profile.ExtraOpts)),
	}
	if profile.Path != types.ProfilePathUnset {
		next.Path = profile.Path
	}
	for key, value := range acc.ExtraOpts {
		next.ExtraOpts[key] = value
	}
	for key, value := range profile.ExtraOpts {
		next.ExtraOpts[key] = value
	}
	return next
}

func concatStrings(head []string, tail []string) []string {
	out := make([]string, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
