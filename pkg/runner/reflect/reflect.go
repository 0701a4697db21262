package reflect

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
	"tableflip.dev/onepct/pkg/query"
)

// Reflect resurfaces reflections from about a week, a month, and a year ago.
// Each lookup tolerates a one day drift on either side.
type Reflect struct {
	ShowID bool

	Repository *journal.Repository
}

var sections = []struct {
	title   string
	daysAgo int
}{
	{"1 Week Ago", 7},
	{"1 Month Ago", 30},
	{"1 Year Ago", 365},
}

func (n *Reflect) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not reflect, no repository")
	}

	snapshot := n.Repository.Entries()
	now := time.Now()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Your Growth Journey")
	pp.NewLine()
	for _, s := range sections {
		pp.Title(s.title)
		pp.Entries(query.EntriesNear(snapshot, s.daysAgo, now)...)
	}
	return nil
}
