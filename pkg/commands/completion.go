package commands

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(onepct completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(onepct completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func tagCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	g := journal.NewRegistry(p)
	if err := g.Initialize(); err != nil {
		return nil
	}
	defs := g.Tags()
	out := make([]string, 0, len(defs))
	for _, def := range defs {
		out = append(out, strconv.Quote(def.Symbol))
	}
	return out
}
