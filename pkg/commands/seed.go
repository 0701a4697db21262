package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/runner/seed"
)

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the journal with sample data (development)",
		Long: `Clear the journal and insert three sample reflections dated one week,
one month, and one year ago. Destructive; intended for demos and development.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := seed.Seed{Repository: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				cmd.Println("This deletes every entry. Re-run with --yes to confirm.")
				return nil
			}
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := seed.Clear{Repository: r}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting every entry.")

	topLevel.AddCommand(cmd)
}
