package core

import (
	"alias-profiles/internal/types"
)

// ValidateCombinedProfile rejects a combination without any matcher, since
// it would select every alias.
func ValidateCombinedProfile(combined types.CombinedProfile, keys []types.ProfileKey) error {
	if combined.HasMatcher() {
		return nil
	}
	return &types.ConfigError{
		Msg:         types.EmptyProfileSelectionMsg,
		ProfileKeys: append([]types.ProfileKey(nil), keys...),
	}
}
