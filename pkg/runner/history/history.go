package history

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
	"tableflip.dev/onepct/pkg/query"
)

type History struct {
	ShowID bool
	Search string
	Tag    string
	Window query.Window
	On     *time.Time

	Repository *journal.Repository
}

func (n *History) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not browse, no repository")
	}

	o := query.Options{
		Search: n.Search,
		Tag:    n.Tag,
		Window: n.Window,
	}
	if n.On != nil {
		o.Window = query.CustomDay
		o.CustomDay = *n.On
	}

	entries := query.Filter(n.Repository.Entries(), o)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Journal History", len(entries))
	pp.Entries(entries...)
	return nil
}
