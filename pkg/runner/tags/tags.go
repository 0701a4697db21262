package tags

import (
	"context"
	"errors"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/printers"
)

// List prints the registry in order, with the positions used by edit/remove.
type List struct {
	Registry *journal.Registry
}

func (n *List) Do(ctx context.Context) error {
	if n.Registry == nil {
		return errors.New("can not list tags, no registry")
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.TagLegend(n.Registry.Tags())
	return nil
}

// Add appends a new definition.
type Add struct {
	Symbol      string
	Description string

	Registry *journal.Registry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Registry == nil {
		return errors.New("can not add tag, no registry")
	}
	if _, err := n.Registry.Add(n.Symbol, n.Description); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.TagLegend(n.Registry.Tags())
	return nil
}

// Edit replaces the definition at Index.
type Edit struct {
	Index       int
	Symbol      string
	Description string

	Registry *journal.Registry
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Registry == nil {
		return errors.New("can not edit tag, no registry")
	}
	if err := n.Registry.Update(n.Index, n.Symbol, n.Description); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.TagLegend(n.Registry.Tags())
	return nil
}

// Remove deletes the definition at Index. Entries keep any symbols that
// referenced it.
type Remove struct {
	Index int

	Registry *journal.Registry
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Registry == nil {
		return errors.New("can not remove tag, no registry")
	}
	if err := n.Registry.Remove(n.Index); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.TagLegend(n.Registry.Tags())
	return nil
}
