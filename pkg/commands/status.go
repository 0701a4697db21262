package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/runner/status"
	"tableflip.dev/onepct/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether today's reflection is recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := status.Status{
				Name:       cfg.UserName(),
				Onboarded:  cfg.HasCompletedOnboarding(),
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
