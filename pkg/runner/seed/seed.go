package seed

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
	"tableflip.dev/onepct/pkg/query"
)

// Seed resets the journal to the three sample reflections.
type Seed struct {
	Repository *journal.Repository
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not seed, no repository")
	}
	if err := n.Repository.SeedSampleData(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Sample Data")
	pp.Entries(query.SortByDateDescending(n.Repository.Entries())...)
	return nil
}

// Clear empties the journal and removes the persisted document.
type Clear struct {
	Repository *journal.Repository
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not clear, no repository")
	}
	if err := n.Repository.ClearAll(); err != nil {
		return err
	}
	fmt.Println("All entries cleared.")
	return nil
}
