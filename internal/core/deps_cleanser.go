package core

import (
	"maps"

	"alias-profiles/internal/types"
)

// CleanseDeps returns a copy of deps without the profiles entry so profile
// configuration never reaches the merged output.
func CleanseDeps(deps types.DepsSet) types.DepsSet {
	return types.DepsSet{
		Aliases: deps.Aliases,
		Extra:   maps.Clone(deps.Extra),
	}
}
