package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alias-profiles/internal/types"
)

func TestCleanseDepsDropsProfiles(t *testing.T) {
	deps := types.DepsSet{
		Aliases:  sampleAliases("dev/run"),
		Profiles: map[types.ProfileKey]types.ProfileDefinition{"dev": {AliasNS: []string{"dev"}}},
		Extra:    map[string]any{"paths": []any{"src"}},
	}

	cleansed := CleanseDeps(deps)
	assert.Nil(t, cleansed.Profiles)
	assert.Equal(t, deps.Aliases.Keys(), cleansed.Aliases.Keys())
	assert.Equal(t, deps.Extra, cleansed.Extra)

	cleansed.Extra["paths"] = "changed"
	assert.Equal(t, []any{"src"}, deps.Extra["paths"])
	assert.Len(t, deps.Profiles, 1)
}

func TestCleanseDepsEmptySet(t *testing.T) {
	cleansed := CleanseDeps(types.DepsSet{})
	assert.Nil(t, cleansed.Profiles)
	assert.Equal(t, 0, cleansed.Aliases.Len())
}
