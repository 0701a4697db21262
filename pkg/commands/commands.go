package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/onepct/pkg/commands/options"
	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "onepct",
		Short: base.Wrap80("One small reflection a day, 1% better every day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addHistory(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addReflect(topLevel)
	addTags(topLevel)
	addStatus(topLevel)
	addSeed(topLevel)
	addClear(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

func loadRepository(testing bool) (*journal.Repository, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	r := journal.NewRepository(p)
	r.AllowMultiplePerDay = testing
	if err := r.Initialize(); err != nil {
		return nil, err
	}
	return r, nil
}

func loadRegistry() (*journal.Registry, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	g := journal.NewRegistry(p)
	if err := g.Initialize(); err != nil {
		return nil, err
	}
	return g, nil
}
