package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage the emoji tag categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadRegistry()
			if err != nil {
				return err
			}
			s := tags.List{Registry: g}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(newTagsAddCmd())
	cmd.AddCommand(newTagsEditCmd())
	cmd.AddCommand(newTagsRemoveCmd())

	topLevel.AddCommand(cmd)
}

func newTagsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <symbol> <description>",
		Short: "Add a tag definition",
		Example: `
onepct tags add 🧘 "Mindfulness"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a symbol and a description")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadRegistry()
			if err != nil {
				return err
			}
			s := tags.Add{
				Symbol:      args[0],
				Description: strings.Join(args[1:], " "),
				Registry:    g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
}

func newTagsEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <symbol> <description>",
		Short: "Replace the tag at a position (see `onepct tags` for indexes)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New("requires an index, a symbol, and a description")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[0])
			g, err := loadRegistry()
			if err != nil {
				return err
			}
			s := tags.Edit{
				Index:       index,
				Symbol:      args[1],
				Description: strings.Join(args[2:], " "),
				Registry:    g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
}

func newTagsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the tag at a position",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an index")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[0])
			g, err := loadRegistry()
			if err != nil {
				return err
			}
			s := tags.Remove{
				Index:    index,
				Registry: g,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
}
