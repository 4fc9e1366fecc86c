// Package shared provides common utility functions used across multiple
// packages in the alias-profiles codebase.
package shared

import (
	"strings"

	"alias-profiles/internal/types"
)

// NormalizeKeyword trims whitespace and a leading keyword colon, so ":dev"
// and "dev" name the same thing.
func NormalizeKeyword(value string) string {
	return strings.TrimPrefix(strings.TrimSpace(value), ":")
}

// NormalizeKeywords applies NormalizeKeyword to every value, dropping
// values that end up empty.
func NormalizeKeywords(values []string) []string {
	var out []string
	for _, value := range values {
		if normalized := NormalizeKeyword(value); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// NormalizeProfilePath normalizes a subrepo path. Both "default" and
// ":default" name the main dependency set; an empty value stays unset.
func NormalizeProfilePath(value string) types.ProfilePath {
	normalized := NormalizeKeyword(value)
	if normalized == "" {
		return types.ProfilePathUnset
	}
	if normalized == NormalizeKeyword(string(types.DefaultProfilePath)) {
		return types.DefaultProfilePath
	}
	return types.ProfilePath(normalized)
}

// NormalizeMatchers applies NormalizeKeyword to every matcher value. Empty
// values are kept: an empty namespace candidate selects bare aliases.
func NormalizeMatchers(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, NormalizeKeyword(value))
	}
	return out
}

// ProfileKeys converts raw request values into normalized profile keys,
// keeping request order and duplicates.
func ProfileKeys(values []string) []types.ProfileKey {
	keys := []types.ProfileKey{}
	for _, value := range NormalizeKeywords(values) {
		keys = append(keys, types.ProfileKey(value))
	}
	return keys
}
