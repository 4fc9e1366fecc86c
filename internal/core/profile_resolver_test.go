package core

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alias-profiles/internal/types"
)

func sampleProcessed() types.ProcessedDeps {
	root := types.DepsSet{
		Aliases: sampleAliases("dev/run", "dev/build", "ci/run"),
		Profiles: map[types.ProfileKey]types.ProfileDefinition{
			"dev":   {AliasNS: []string{"dev"}, ExtraOpts: map[string]any{"jvm_opts": "-Xmx1g"}},
			"test":  {AliasName: []string{"run"}},
			"lib-a": {Path: "lib-a"},
			"lib-b": {Path: "lib-b", AliasName: []string{"run"}},
			"opts":  {ExtraOpts: map[string]any{"verbose": true}},
		},
		Extra: map[string]any{"paths": []any{"src"}},
	}
	return types.ProcessedDeps{
		MainDeps: root,
		RootDeps: root,
		SubrepoDeps: map[types.ProfilePath]types.DepsSet{
			"lib-a": {Aliases: sampleAliases("lib/run", "lib/test", "run")},
		},
	}
}

func TestWithProfilesCombinesAndMatches(t *testing.T) {
	resolver := NewProfileResolver()
	out, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"dev", "test"})
	require.NoError(t, err)

	if diff := cmp.Diff(aliasKeys("dev/run"), out.MatchedAliases); diff != "" {
		t.Fatalf("unexpected matched aliases (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]any{"jvm_opts": "-Xmx1g"}, out.ExtraOpts)
	assert.Equal(t, types.DefaultProfilePath, out.SelectedPath)
}

func TestWithProfilesEmptyKeysShortCircuits(t *testing.T) {
	resolver := NewProfileResolver()
	for _, keys := range [][]types.ProfileKey{nil, {}} {
		out, err := resolver.WithProfiles(context.Background(), sampleProcessed(), keys)
		require.NoError(t, err)
		assert.NotNil(t, out.MatchedAliases)
		assert.Empty(t, out.MatchedAliases)
		assert.NotNil(t, out.ExtraOpts)
		assert.Empty(t, out.ExtraOpts)
		assert.Nil(t, out.MainDeps.Profiles)
	}
}

func TestWithProfilesCleansesMainDeps(t *testing.T) {
	resolver := NewProfileResolver()
	out, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"dev"})
	require.NoError(t, err)

	assert.Nil(t, out.MainDeps.Profiles)
	assert.Equal(t, []any{"src"}, out.MainDeps.Extra["paths"])
	assert.Equal(t, 3, out.MainDeps.Aliases.Len())
	assert.NotEmpty(t, out.RootDeps.Profiles)
}

func TestWithProfilesDoesNotMutateInput(t *testing.T) {
	processed := sampleProcessed()
	resolver := NewProfileResolver()
	_, err := resolver.WithProfiles(context.Background(), processed, []types.ProfileKey{"dev", "opts"})
	require.NoError(t, err)

	assert.Len(t, processed.MainDeps.Profiles, 5)
	assert.Nil(t, processed.MatchedAliases)
	assert.Nil(t, processed.ExtraOpts)
	assert.Equal(t, map[string]any{"jvm_opts": "-Xmx1g"}, processed.RootDeps.Profiles["dev"].ExtraOpts)
}

func TestWithProfilesUnknownKeyFails(t *testing.T) {
	resolver := NewProfileResolver()
	_, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"unknown"})
	require.Error(t, err)

	var resErr *types.ProfileResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, types.ProfileResolutionContext, resErr.Context)

	var cfgErr *types.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []types.ProfileKey{"unknown"}, cfgErr.ProfileKeys)
	assert.Contains(t, err.Error(), "Error processing multi-alias profiles.")
}

func TestWithProfilesOptionsOnlyFails(t *testing.T) {
	resolver := NewProfileResolver()
	_, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"opts", "lib-a"})
	require.Error(t, err)

	var cfgErr *types.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []types.ProfileKey{"opts", "lib-a"}, cfgErr.ProfileKeys)
}

func TestWithProfilesMatchesAgainstSubrepo(t *testing.T) {
	resolver := NewProfileResolver()
	out, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"lib-a", "test"})
	require.NoError(t, err)

	if diff := cmp.Diff(aliasKeys("lib/run", "run"), out.MatchedAliases); diff != "" {
		t.Fatalf("unexpected matched aliases (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.ProfilePath("lib-a"), out.SelectedPath)
}

func TestWithProfilesMissingSubrepoMatchesNothing(t *testing.T) {
	resolver := NewProfileResolver()
	out, err := resolver.WithProfiles(context.Background(), sampleProcessed(), []types.ProfileKey{"lib-b"})
	require.NoError(t, err)
	assert.NotNil(t, out.MatchedAliases)
	assert.Empty(t, out.MatchedAliases)
}

func TestWithProfilesDefaultPathResetsToMain(t *testing.T) {
	processed := sampleProcessed()
	processed.RootDeps.Profiles["main"] = types.ProfileDefinition{Path: types.DefaultProfilePath}
	resolver := NewProfileResolver()

	out, err := resolver.WithProfiles(context.Background(), processed, []types.ProfileKey{"lib-a", "main", "test"})
	require.NoError(t, err)
	if diff := cmp.Diff(aliasKeys("dev/run", "ci/run"), out.MatchedAliases); diff != "" {
		t.Fatalf("unexpected matched aliases (-want +got):\n%s", diff)
	}
}

func TestWithProfilesLogsToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	resolver := NewProfileResolver()
	_, err := resolver.WithProfiles(ctx, sampleProcessed(), []types.ProfileKey{"dev"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "profiles resolved")
	assert.Contains(t, buf.String(), `"matched":2`)

	buf.Reset()
	_, err = resolver.WithProfiles(ctx, sampleProcessed(), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no profiles requested")
}
