package core

import (
	"slices"

	"alias-profiles/internal/types"
)

// MatchDepsAliases returns the alias keys whose namespace is in aliasNS and
// whose name is in aliasName, in declaration order. An empty matcher passes
// every alias for its dimension.
func MatchDepsAliases(aliases types.Aliases, aliasNS []string, aliasName []string) []types.AliasKey {
	matched := []types.AliasKey{}
	for _, key := range aliases.Keys() {
		if !matchesDimension(aliasNS, key.Namespace) {
			continue
		}
		if !matchesDimension(aliasName, key.Name) {
			continue
		}
		matched = append(matched, key)
	}
	return matched
}

func matchesDimension(candidates []string, value string) bool {
	return len(candidates) == 0 || slices.Contains(candidates, value)
}
