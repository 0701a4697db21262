// Package query provides pure, stateless functions over a snapshot of the
// entry collection. Nothing here mutates or persists; every function is safe
// for concurrent readers.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/onepct/pkg/journal"
)

// Window names a time-range filter applied to entries by date.
type Window int

const (
	All Window = iota
	PastWeek
	PastMonth
	PastYear
	CustomDay
)

// ParseWindow maps the CLI/MCP spelling of a window to its value.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "week", "pastweek":
		return PastWeek, nil
	case "month", "pastmonth":
		return PastMonth, nil
	case "year", "pastyear":
		return PastYear, nil
	case "day", "custom", "customday":
		return CustomDay, nil
	}
	return All, fmt.Errorf("query: unknown window %q (expected all, week, month, year, or day)", s)
}

func (w Window) String() string {
	switch w {
	case PastWeek:
		return "week"
	case PastMonth:
		return "month"
	case PastYear:
		return "year"
	case CustomDay:
		return "day"
	default:
		return "all"
	}
}

// Search keeps entries whose text contains substring, case-insensitively.
// A blank substring returns the input unchanged.
func Search(entries []*journal.Entry, substring string) []*journal.Entry {
	if strings.TrimSpace(substring) == "" {
		return entries
	}
	needle := strings.ToLower(substring)
	out := make([]*journal.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), needle) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByTag keeps entries tagged with symbol. An empty symbol passes the
// input through unfiltered.
func FilterByTag(entries []*journal.Entry, symbol string) []*journal.Entry {
	if symbol == "" {
		return entries
	}
	out := make([]*journal.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasTag(symbol) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByWindow keeps entries inside the named window relative to reference.
// PastWeek/Month/Year keep dates at or after the calendar subtraction from
// reference; CustomDay keeps entries on customDay's local calendar day.
func FilterByWindow(entries []*journal.Entry, w Window, reference time.Time, customDay time.Time) []*journal.Entry {
	var keep func(e *journal.Entry) bool
	switch w {
	case PastWeek:
		cutoff := reference.AddDate(0, 0, -7)
		keep = func(e *journal.Entry) bool { return !e.Date.Before(cutoff) }
	case PastMonth:
		cutoff := reference.AddDate(0, -1, 0)
		keep = func(e *journal.Entry) bool { return !e.Date.Before(cutoff) }
	case PastYear:
		cutoff := reference.AddDate(-1, 0, 0)
		keep = func(e *journal.Entry) bool { return !e.Date.Before(cutoff) }
	case CustomDay:
		keep = func(e *journal.Entry) bool { return e.Date.SameDay(customDay) }
	default:
		return entries
	}

	out := make([]*journal.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateDescending returns a new slice ordered most recent first. The
// sort is stable so same-instant entries keep their snapshot order.
func SortByDateDescending(entries []*journal.Entry) []*journal.Entry {
	out := append([]*journal.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// DistinctTagsUsed returns the deduplicated union of symbols present on the
// entries, sorted lexicographically. It reflects only what entries carry,
// independent of the tag registry.
func DistinctTagsUsed(entries []*journal.Entry) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, t := range e.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// EntriesNear selects entries whose local calendar day falls within one day
// of reference minus daysAgo days, inclusive on both sides. An empty result
// means no reflection was recorded near that day; it is not an error.
func EntriesNear(entries []*journal.Entry, daysAgo int, reference time.Time) []*journal.Entry {
	target := reference.AddDate(0, 0, -daysAgo)
	lower := startOfDay(target.AddDate(0, 0, -1))
	upper := startOfDay(target.AddDate(0, 0, 1))

	out := make([]*journal.Entry, 0, len(entries))
	for _, e := range entries {
		day := e.Date.StartOfDay()
		if !day.Before(lower) && !day.After(upper) {
			out = append(out, e)
		}
	}
	return out
}

// Options combines the history filters. Zero values pass everything through.
type Options struct {
	Search    string
	Tag       string
	Window    Window
	Reference time.Time
	CustomDay time.Time
}

// Filter applies search, tag, and window filters then sorts most recent
// first, mirroring the history view composition.
func Filter(entries []*journal.Entry, o Options) []*journal.Entry {
	reference := o.Reference
	if reference.IsZero() {
		reference = time.Now()
	}
	filtered := Search(entries, o.Search)
	filtered = FilterByTag(filtered, o.Tag)
	filtered = FilterByWindow(filtered, o.Window, reference, o.CustomDay)
	return SortByDateDescending(filtered)
}

func startOfDay(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, l.Location())
}
