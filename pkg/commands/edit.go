package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit <id> <new text>",
		Short: "Replace the text of an entry",
		Long: `Replace the full text of an entry. The entry's date and tags are kept.
Use 'onepct history --id' to find entry ids.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an entry id and replacement text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:         args[0],
				Text:       strings.Join(args[1:], " "),
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := edit.Delete{
				ID:         args[0],
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
