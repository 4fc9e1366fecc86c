package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alias-profiles/internal/types"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		DepsFile: fixturePath(t),
		Profiles: []string{"dev", "ci"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "ci"}, result.Combined.AliasNS)
	assert.Equal(t, []any{"-Xmx4g"}, result.Combined.ExtraOpts["jvm_opts"])
}

func TestValidateAppUnknownProfile(t *testing.T) {
	service := NewService()
	_, err := service.Validate(t.Context(), ValidateRequest{
		DepsFile: fixturePath(t),
		Profiles: []string{"unknown"},
	})
	require.Error(t, err)

	var resErr *types.ProfileResolutionError
	require.True(t, errors.As(err, &resErr))
	var cfgErr *types.ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestValidateAppRequiresProfiles(t *testing.T) {
	service := NewService()
	_, err := service.Validate(t.Context(), ValidateRequest{DepsFile: fixturePath(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one profile is required")
}
