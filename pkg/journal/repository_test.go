package journal

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/onepct/pkg/store"
)

type memoryStore struct {
	docs  map[string][]byte
	saves int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (m *memoryStore) Save(key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.docs[key] = b
	m.saves++
	return nil
}

func (m *memoryStore) Load(key string, out interface{}) (bool, error) {
	b, ok := m.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memoryStore) Erase(key string) error {
	delete(m.docs, key)
	return nil
}

func (m *memoryStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type failingStore struct {
	memoryStore
}

func (f *failingStore) Save(key string, value interface{}) error {
	return errors.New("disk full")
}

func newRepository(t *testing.T, p store.Persistence) *Repository {
	t.Helper()
	r := NewRepository(p)
	if err := r.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return r
}

func TestAddEntryDayGate(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	if !r.CanAddToday() {
		t.Fatal("expected empty repository to allow an entry today")
	}

	if _, err := r.AddEntry("went for a run", []string{"💪"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if r.CanAddToday() {
		t.Fatal("expected day gate to close after the first entry")
	}

	if _, err := r.AddEntry("went for another run", nil); !errors.Is(err, ErrDayRecorded) {
		t.Fatalf("second add: expected ErrDayRecorded, got %v", err)
	}
	if got := len(r.Entries()); got != 1 {
		t.Fatalf("expected 1 entry after rejected add, got %d", got)
	}
}

func TestAddEntryTestingModeBypassesGate(t *testing.T) {
	r := newRepository(t, newMemoryStore())
	r.AllowMultiplePerDay = true

	for i := 0; i < 3; i++ {
		if _, err := r.AddEntry("practiced scales", nil); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if got := len(r.Entries()); got != 3 {
		t.Fatalf("expected 3 entries in testing mode, got %d", got)
	}
}

func TestAddEntryAppliesPrefix(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	e, err := r.AddEntry("meditated for ten minutes", []string{"🌿", "😊"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if want := TextPrefix + "meditated for ten minutes"; e.Text != want {
		t.Fatalf("expected %q, got %q", want, e.Text)
	}
	if e.ID == "" {
		t.Fatal("expected a generated id")
	}
	if e.Date.IsZero() {
		t.Fatal("expected a creation date")
	}
	if len(e.Tags) != 2 || e.Tags[0] != "🌿" || e.Tags[1] != "😊" {
		t.Fatalf("expected tags in selection order, got %v", e.Tags)
	}
}

func TestUpdateEntryTextOnlyChangesText(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	created, err := r.AddEntry("read a chapter", []string{"📚"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := r.UpdateEntryText(created.ID, "I rewrote this entry entirely")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Text != "I rewrote this entry entirely" {
		t.Fatalf("expected replaced text, got %q", updated.Text)
	}
	if !updated.Date.Equal(created.Date.Time) {
		t.Fatal("expected date to be unchanged by edit")
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "📚" {
		t.Fatalf("expected tags to be unchanged, got %v", updated.Tags)
	}
}

func TestUpdateEntryTextNotFound(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	if _, err := r.AddEntry("stretched", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := r.Entries()

	if _, err := r.UpdateEntryText("no-such-id", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after := r.Entries()
	if len(after) != len(before) || after[0].Text != before[0].Text {
		t.Fatal("expected collection unchanged after failed update")
	}
}

func TestDeleteEntryIdempotent(t *testing.T) {
	r := newRepository(t, newMemoryStore())
	r.AllowMultiplePerDay = true

	first, _ := r.AddEntry("wrote a test", nil)
	if _, err := r.AddEntry("wrote another test", nil); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := r.DeleteEntry(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	once := r.Entries()

	if err := r.DeleteEntry(first.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	twice := r.Entries()

	if len(once) != 1 || len(twice) != 1 || once[0].ID != twice[0].ID {
		t.Fatalf("expected deleting twice to equal deleting once, got %d then %d", len(once), len(twice))
	}
}

func TestClearAllRemovesDocument(t *testing.T) {
	ms := newMemoryStore()
	r := newRepository(t, ms)

	if _, err := r.AddEntry("tidied my desk", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(r.Entries()); got != 0 {
		t.Fatalf("expected empty collection, got %d", got)
	}
	if _, ok := ms.docs[store.EntriesKey]; ok {
		t.Fatal("expected persisted document to be erased")
	}
}

func TestSeedSampleData(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	if _, err := r.AddEntry("will be replaced", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.SeedSampleData(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 sample entries, got %d", len(entries))
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)
	yearAgo := now.AddDate(-1, 0, 0)

	if !entries[0].Date.SameDay(weekAgo) {
		t.Fatalf("expected first sample a week ago, got %v", entries[0].Date)
	}
	if !entries[1].Date.SameDay(monthAgo) {
		t.Fatalf("expected second sample a month ago, got %v", entries[1].Date)
	}
	if !entries[2].Date.SameDay(yearAgo) {
		t.Fatalf("expected third sample a year ago, got %v", entries[2].Date)
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Text, TextPrefix) {
			t.Fatalf("expected sample text to carry the prefix, got %q", e.Text)
		}
		if len(e.Tags) != 1 {
			t.Fatalf("expected one tag per sample, got %v", e.Tags)
		}
	}
}

func TestInitializeAbsentDocument(t *testing.T) {
	r := newRepository(t, newMemoryStore())
	if got := r.Entries(); len(got) != 0 {
		t.Fatalf("expected empty collection from absent document, got %d", len(got))
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	r := newRepository(t, &failingStore{memoryStore{docs: make(map[string][]byte)}})

	if _, err := r.AddEntry("kept in memory only", nil); err == nil {
		t.Fatal("expected a save error")
	}
	if got := len(r.Entries()); got != 1 {
		t.Fatalf("expected in-memory state to keep the entry, got %d", got)
	}
}

func TestEntriesReturnsSnapshot(t *testing.T) {
	r := newRepository(t, newMemoryStore())

	if _, err := r.AddEntry("planted basil", []string{"🌿"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	snap := r.Entries()
	snap[0].Text = "mutated"
	snap[0].Tags[0] = "💥"

	fresh := r.Entries()
	if fresh[0].Text == "mutated" || fresh[0].Tags[0] == "💥" {
		t.Fatal("expected snapshot mutations to not reach the repository")
	}
}
