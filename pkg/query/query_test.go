package query

import (
	"testing"
	"time"

	"tableflip.dev/onepct/pkg/journal"
)

func entryAt(id string, when time.Time, text string, tags ...string) *journal.Entry {
	return &journal.Entry{
		ID:   id,
		Date: journal.Timestamp{Time: when},
		Text: text,
		Tags: tags,
	}
}

func ids(entries []*journal.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestSearchBlankReturnsAllInOrder(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("a", now, "took a walk"),
		entryAt("b", now.Add(-time.Hour), "read a book"),
	}

	for _, blank := range []string{"", "   "} {
		got := Search(entries, blank)
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Fatalf("search %q: expected passthrough, got %v", blank, ids(got))
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("a", now, "practiced Mindfulness in the park"),
		entryAt("b", now, "cooked dinner"),
	}

	got := Search(entries, "mindFULNESS")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected case-insensitive match, got %v", ids(got))
	}
}

func TestFilterByTag(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("a", now, "walked", "🌿"),
		entryAt("b", now, "called a friend", "❤️"),
		entryAt("c", now, "journaled", "🌿", "😊"),
	}

	got := FilterByTag(entries, "🌿")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected entries tagged 🌿, got %v", ids(got))
	}

	if got := FilterByTag(entries, ""); len(got) != 3 {
		t.Fatalf("expected empty symbol to pass through, got %v", ids(got))
	}
}

func TestFilterByWindowPastWeek(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("today", now, "today"),
		entryAt("recent", now.AddDate(0, 0, -3), "three days ago"),
		entryAt("old", now.AddDate(0, 0, -10), "ten days ago"),
	}

	got := FilterByWindow(entries, PastWeek, now, time.Time{})
	if len(got) != 2 || got[0].ID != "today" || got[1].ID != "recent" {
		t.Fatalf("expected {today, recent}, got %v", ids(got))
	}
}

func TestFilterByWindowMonthAndYear(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("week", now.AddDate(0, 0, -7), "a week ago"),
		entryAt("month", now.AddDate(0, -1, 0).Add(time.Hour), "just inside a month"),
		entryAt("year", now.AddDate(-1, 0, 0).Add(time.Hour), "just inside a year"),
		entryAt("ancient", now.AddDate(-2, 0, 0), "two years ago"),
	}

	if got := FilterByWindow(entries, PastMonth, now, time.Time{}); len(got) != 2 {
		t.Fatalf("past month: expected 2, got %v", ids(got))
	}
	if got := FilterByWindow(entries, PastYear, now, time.Time{}); len(got) != 3 {
		t.Fatalf("past year: expected 3, got %v", ids(got))
	}
	if got := FilterByWindow(entries, All, now, time.Time{}); len(got) != 4 {
		t.Fatalf("all: expected passthrough, got %v", ids(got))
	}
}

func TestFilterByWindowCustomDay(t *testing.T) {
	day := time.Date(2025, 2, 12, 9, 0, 0, 0, time.Local)
	entries := []*journal.Entry{
		entryAt("match", day.Add(10*time.Hour), "same day, later"),
		entryAt("other", day.AddDate(0, 0, 1), "next day"),
	}

	got := FilterByWindow(entries, CustomDay, time.Now(), day)
	if len(got) != 1 || got[0].ID != "match" {
		t.Fatalf("expected the same-calendar-day entry, got %v", ids(got))
	}
}

func TestSortByDateDescending(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("oldest", now.AddDate(-1, 0, 0), "a year ago"),
		entryAt("newest", now.AddDate(0, 0, -7), "a week ago"),
		entryAt("middle", now.AddDate(0, -1, 0), "a month ago"),
	}

	got := SortByDateDescending(entries)
	want := []string{"newest", "middle", "oldest"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %v", i, id, ids(got))
		}
	}
	if entries[0].ID != "oldest" {
		t.Fatal("expected the input slice to be left unsorted")
	}
}

func TestDistinctTagsUsed(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("a", now, "one", "🌿", "❤️"),
		entryAt("b", now, "two", "🌿"),
		entryAt("c", now, "three"),
	}

	got := DistinctTagsUsed(entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct symbols, got %v", got)
	}
	if got[0] > got[1] {
		t.Fatalf("expected lexicographic order, got %v", got)
	}
}

func TestEntriesNear(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("exact", now.AddDate(0, 0, -7), "a week ago"),
		entryAt("far", now.AddDate(0, 0, -9), "nine days ago"),
	}

	got := EntriesNear(entries, 7, now)
	if len(got) != 1 || got[0].ID != "exact" {
		t.Fatalf("expected only the 7-days-ago entry, got %v", ids(got))
	}
}

func TestEntriesNearIncludesAdjacentDays(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("before", now.AddDate(0, 0, -8), "eight days ago"),
		entryAt("target", now.AddDate(0, 0, -7), "seven days ago"),
		entryAt("after", now.AddDate(0, 0, -6), "six days ago"),
		entryAt("outside", now.AddDate(0, 0, -5), "five days ago"),
	}

	got := EntriesNear(entries, 7, now)
	if len(got) != 3 {
		t.Fatalf("expected the ±1 day band, got %v", ids(got))
	}
	for _, e := range got {
		if e.ID == "outside" {
			t.Fatal("expected five-days-ago to fall outside the band")
		}
	}
}

func TestEntriesNearEmptyResult(t *testing.T) {
	now := time.Now()
	entries := []*journal.Entry{
		entryAt("today", now, "today"),
	}

	if got := EntriesNear(entries, 30, now); len(got) != 0 {
		t.Fatalf("expected no entries near a month ago, got %v", ids(got))
	}
}

func TestFilterComposesAndSorts(t *testing.T) {
	now := time.Now()
	week := entryAt("week", now.AddDate(0, 0, -7), journal.TextPrefix+"took a long walk in nature and practiced mindfulness", "🌿")
	month := entryAt("month", now.AddDate(0, -1, 0), journal.TextPrefix+"helped my friend move and strengthened our friendship", "❤️")
	year := entryAt("year", now.AddDate(-1, 0, 0), journal.TextPrefix+"finished reading a challenging book about quantum physics", "📚")
	entries := []*journal.Entry{year, month, week}

	got := Filter(entries, Options{})
	want := []string{"week", "month", "year"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %v", i, id, ids(got))
		}
	}

	got = Filter(entries, Options{Tag: "❤️"})
	if len(got) != 1 || got[0].ID != "month" {
		t.Fatalf("expected only the ❤️ entry, got %v", ids(got))
	}

	got = Filter(entries, Options{Search: "quantum", Window: PastYear, Reference: now})
	if len(got) != 1 || got[0].ID != "year" {
		t.Fatalf("expected the quantum entry within a year, got %v", ids(got))
	}
}

func TestParseWindow(t *testing.T) {
	cases := map[string]Window{
		"":      All,
		"all":   All,
		"week":  PastWeek,
		"Month": PastMonth,
		"YEAR":  PastYear,
		"day":   CustomDay,
	}
	for in, want := range cases {
		got, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseWindow("fortnight"); err == nil {
		t.Fatal("expected an error for an unknown window")
	}
}
