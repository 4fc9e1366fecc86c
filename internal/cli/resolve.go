package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alias-profiles/internal/app"
)

type resolveOptions struct {
	DepsFile string
	Profiles []string
	Main     string
	Output   string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve profiles into matched aliases and merged options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.DepsFile, "deps-file", "", "Project deps file")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Profile keys, in order")
	cmd.Flags().StringVar(&opts.Main, "main", "", "Subrepo acting as main deps (default: root)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the annotated config as YAML to this file")

	_ = viper.BindPFlag("deps_file", cmd.Flags().Lookup("deps-file"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("main", cmd.Flags().Lookup("main"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		DepsFile:   resolveString(cmd, opts.DepsFile, "deps_file", "deps-file"),
		Profiles:   resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
		MainPath:   resolveString(cmd, opts.Main, "main", "main"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}

	aliases := make([]string, 0, len(result.MatchedAliases))
	for _, key := range result.MatchedAliases {
		aliases = append(aliases, key.String())
	}
	fmt.Printf("matched aliases: %s\n", strings.Join(aliases, ", "))

	optKeys := make([]string, 0, len(result.Invocation.Options))
	for opt := range result.Invocation.Options {
		optKeys = append(optKeys, opt)
	}
	sort.Strings(optKeys)
	for _, opt := range optKeys {
		fmt.Printf("- %s: %v\n", opt, result.Invocation.Options[opt])
	}
	if result.OutputPath != "" {
		fmt.Printf("written: %s\n", result.OutputPath)
	}
	return nil
}
