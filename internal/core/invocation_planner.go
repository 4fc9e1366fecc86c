package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"alias-profiles/internal/types"
)

type InvocationPlanner struct{}

func NewInvocationPlanner() InvocationPlanner {
	return InvocationPlanner{}
}

// Plan merges the option groups of the matched aliases in match order and
// applies the extra options last. Later values win per key.
func (p InvocationPlanner) Plan(ctx context.Context, processed types.ProcessedDeps) (types.Invocation, error) {
	invocation := types.Invocation{
		Aliases: append([]types.AliasKey{}, processed.MatchedAliases...),
		Options: map[string]any{},
	}
	if len(processed.MatchedAliases) > 0 {
		path := processed.SelectedPath
		if path == types.ProfilePathUnset {
			path = types.DefaultProfilePath
		}
		target := selectDeps(processed, path)
		for _, key := range processed.MatchedAliases {
			def, ok := target.Aliases.Get(key)
			if !ok {
				return types.Invocation{}, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("matched alias %s not declared in %s", key, path))
			}
			for opt, value := range def {
				invocation.Options[opt] = value
			}
		}
	}
	for opt, value := range processed.ExtraOpts {
		invocation.Options[opt] = value
	}
	log.Ctx(ctx).Debug().
		Int("aliases", len(invocation.Aliases)).
		Int("options", len(invocation.Options)).
		Msg("invocation planned")
	return invocation, nil
}
