package add

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
)

type Add struct {
	Text string
	Tags []string

	Repository *journal.Repository
}

func (n *Add) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not add, no repository")
	}

	e, err := n.Repository.AddEntry(n.Text, n.Tags)
	if errors.Is(err, journal.ErrDayRecorded) {
		fmt.Println("You already recorded a reflection today. Come back tomorrow!")
		return nil
	}
	if err != nil {
		// The entry is kept in memory for the session even when the save
		// fails; report and continue.
		fmt.Fprintf(os.Stderr, "onepct: warning: %v\n", err)
	}

	pp := printers.PrettyPrint{}
	pp.Title("Today")
	pp.Entries(e)
	return nil
}
