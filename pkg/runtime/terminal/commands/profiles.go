package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewProfilesCmd(env *Env) *cobra.Command {
	var profilesPath string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List organization profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := env.registry(profilesPath)
			if err != nil {
				return err
			}

			names, err := registry.GetProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			for _, name := range names {
				profile, err := registry.GetProfile(cmd.Context(), name)
				if err != nil {
					fmt.Fprintf(env.Output, "- %s: invalid (%v)\n", name, err)
					continue
				}

				infra := make([]string, len(profile.Infrastructure))
				for i, v := range profile.Infrastructure {
					infra[i] = string(v)
				}
				fmt.Fprintf(env.Output, "- %s: %s, %s, budget %s, %s\n",
					name, profile.Sector, profile.Size, profile.BudgetTier, strings.Join(infra, "+"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profilesPath, "profiles", "", "Path to the organization profiles file")

	return cmd
}
