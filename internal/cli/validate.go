package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alias-profiles/internal/app"
)

type validateOptions struct {
	DepsFile string
	Profiles []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a profile combination narrows the alias selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DepsFile, "deps-file", "", "Project deps file")
	cmd.Flags().StringSliceVar(&opts.Profiles, "profile", nil, "Profile keys, in order")
	_ = viper.BindPFlag("deps_file", cmd.Flags().Lookup("deps-file"))
	_ = viper.BindPFlag("profiles", cmd.Flags().Lookup("profile"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		DepsFile: resolveString(cmd, opts.DepsFile, "deps_file", "deps-file"),
		Profiles: resolveStrings(cmd, opts.Profiles, "profiles", "profile"),
	})
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(result.Profiles))
	for _, key := range result.Profiles {
		keys = append(keys, string(key))
	}
	fmt.Printf("valid: %s\n", strings.Join(keys, ", "))
	return nil
}

func newAppService() app.Service {
	return app.NewService()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
