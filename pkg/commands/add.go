package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/commands/options"
	"tableflip.dev/onepct/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record today's reflection",
		Long: `Record today's one-line reflection. The text is stored as
"To become 1% better today, I " plus what you type, so phrase it to continue
that sentence. Only one reflection is allowed per calendar day.`,
		Example: `
onepct add went for a run before work -t 💪
onepct add called my grandmother -t ❤️ -t 😊
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a reflection")
			}
			ao.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(ao.Testing)
			if err != nil {
				return err
			}
			s := add.Add{
				Text:       ao.Text,
				Tags:       ao.Tags,
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTagArgs(cmd, ao)
	options.AddTestingArg(cmd, ao)
	flagName := "tag"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
