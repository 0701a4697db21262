package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
)

// Edit replaces the text of an existing entry. The date and tags stay as
// they were.
type Edit struct {
	ID   string
	Text string

	Repository *journal.Repository
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not edit, no repository")
	}

	e, err := n.Repository.UpdateEntryText(n.ID, n.Text)
	if errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("nothing to update: no entry with id %s", n.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Entries(e)
	return nil
}

// Delete removes an entry by id. Unknown ids are a quiet no-op, so repeating
// a delete is safe.
type Delete struct {
	ID string

	Repository *journal.Repository
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not delete, no repository")
	}
	if err := n.Repository.DeleteEntry(n.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %s.\n", n.ID)
	return nil
}
