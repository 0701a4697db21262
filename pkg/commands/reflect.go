package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/runner/reflect"
)

func addReflect(topLevel *cobra.Command) {
	var showID bool

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Revisit reflections from 1 week, 1 month, and 1 year ago",
		Example: `
onepct reflect
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := reflect.Reflect{
				ShowID:     showID,
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show entry ids.")

	topLevel.AddCommand(cmd)
}
