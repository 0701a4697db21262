package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/onepct/pkg/journal"
)

// Status answers the one question outside collaborators (such as a reminder
// scheduler) care about: is there an entry for today?
type Status struct {
	Name      string
	Onboarded bool

	// Out defaults to os.Stdout.
	Out io.Writer

	Repository *journal.Repository
}

func (n *Status) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not report status, no repository")
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if n.Name != "" {
		fmt.Fprintf(out, "Hi %s!\n", n.Name)
	}
	if !n.Onboarded {
		fmt.Fprintln(out, "Looks like a first run. Set `name` and `onboarded: true` in ~/.onepct.yaml to personalize onepct.")
	}

	if n.Repository.CanAddToday() {
		fmt.Fprintln(out, "No reflection yet today. Run `onepct add` to record one.")
		return nil
	}
	fmt.Fprintln(out, "Today's reflection is recorded. See you tomorrow!")
	return nil
}
