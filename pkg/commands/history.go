package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/commands/options"
	"tableflip.dev/onepct/pkg/query"
	"tableflip.dev/onepct/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"get", "list"},
		Short:   "Browse, search, and filter past reflections",
		Example: `
onepct history
onepct history --search mindfulness
onepct history -t 🌿 -w month
onepct history --on="2025-02-28"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := query.ParseWindow(ho.Window)
			if err != nil {
				return err
			}
			on, err := ho.GetOn()
			if err != nil {
				return err
			}

			r, err := loadRepository(false)
			if err != nil {
				return err
			}
			s := history.History{
				ShowID:     ho.ShowID,
				Search:     ho.Search,
				Tag:        ho.Tag,
				Window:     w,
				On:         on,
				Repository: r,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHistoryArgs(cmd, ho)
	options.AddShowIDArgs(cmd, ho)
	flagName := "tag"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
