package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alias-profiles/internal/app"
)

type profilesOptions struct {
	DepsFile string
}

func newProfilesCommand() *cobra.Command {
	opts := profilesOptions{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles declared in the project deps file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfiles(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DepsFile, "deps-file", "", "Project deps file")
	_ = viper.BindPFlag("deps_file", cmd.Flags().Lookup("deps-file"))
	return cmd
}

func runProfiles(cmd *cobra.Command, opts profilesOptions) error {
	service := newAppService()
	result, err := service.Profiles(app.ProfilesRequest{
		DepsFile: resolveString(cmd, opts.DepsFile, "deps_file", "deps-file"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("profiles: %d\n", len(result.Profiles))
	for _, summary := range result.Profiles {
		fmt.Printf("- %s (path=%s)\n", summary.Key, summary.Path)
		if len(summary.AliasNS) > 0 {
			fmt.Printf("  alias_ns: %s\n", strings.Join(summary.AliasNS, ", "))
		}
		if len(summary.AliasName) > 0 {
			fmt.Printf("  alias_name: %s\n", strings.Join(summary.AliasName, ", "))
		}
		if len(summary.ExtraOpts) > 0 {
			fmt.Printf("  extra_opts: %s\n", strings.Join(summary.ExtraOpts, ", "))
		}
	}
	return nil
}
