package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/onepct/pkg/journal"
)

const layoutUS = "January 2, 2006"

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a filtered snapshot, one reflection per block: date and
// tags on the first line, text underneath.
func (pp *PrettyPrint) Entries(entries ...*journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print("  ")
		}
		_, _ = d.Print(e.Date.Local().Format(layoutUS))
		if len(e.Tags) > 0 {
			_, _ = d.Printf("  %s", strings.Join(e.Tags, " "))
		}
		_, _ = d.Println("")
		if pp.ShowID {
			_, _ = t.Print(spacing)
		}
		_, _ = t.Printf("%s\n\n", e.Text)
	}
}

// TagLegend renders the registry as a table of position, symbol, and
// description so edit/remove indexes are visible.
func (pp *PrettyPrint) TagLegend(defs []journal.TagDefinition) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("#"), bold("Tag"), bold("Meaning"))
	for i, def := range defs {
		tbl.AddRow(fmt.Sprintf("%d", i), def.Symbol, def.Description)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func bold(in string) string {
	return color.New(color.Bold).Sprint(in)
}
