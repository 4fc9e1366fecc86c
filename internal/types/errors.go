package types

import (
	"fmt"
	"strings"
)

const (
	EmptyProfileSelectionMsg = "Profile selection must include at least one alias namespace or alias name matcher"
	ProfileResolutionContext = "Error processing multi-alias profiles."
)

// ConfigError reports an invalid profile selection together with the
// profile keys that produced it.
type ConfigError struct {
	Msg         string
	ProfileKeys []ProfileKey
}

func (e *ConfigError) Error() string {
	keys := make([]string, 0, len(e.ProfileKeys))
	for _, key := range e.ProfileKeys {
		keys = append(keys, string(key))
	}
	return fmt.Sprintf("%s (profiles: %s)", e.Msg, strings.Join(keys, ", "))
}

// ProfileResolutionError annotates any failure raised while resolving
// profiles.
type ProfileResolutionError struct {
	Context string
	Cause   error
}

func (e *ProfileResolutionError) Error() string {
	if e.Cause == nil {
		return e.Context
	}
	return fmt.Sprintf("%s %v", e.Context, e.Cause)
}

func (e *ProfileResolutionError) Unwrap() error {
	return e.Cause
}
