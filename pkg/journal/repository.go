package journal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/onepct/pkg/store"
)

var (
	// ErrDayRecorded is returned by AddEntry when a reflection already exists
	// for the current calendar day. Callers that want the soft behavior check
	// CanAddToday before calling.
	ErrDayRecorded = errors.New("journal: an entry already exists for today")

	// ErrNotFound is returned when a mutation references an unknown entry id.
	ErrNotFound = errors.New("journal: entry not found")
)

// Repository owns the entry collection in memory and is the sole writer to its
// persisted document. Every mutation re-persists the whole collection before
// returning; if the save fails the in-memory state is still updated and stays
// the source of truth for the session.
type Repository struct {
	// AllowMultiplePerDay disables the one-entry-per-day gate. Development and
	// demo escape hatch only.
	AllowMultiplePerDay bool

	mu          sync.Mutex
	persistence store.Persistence
	entries     []*Entry
}

func NewRepository(p store.Persistence) *Repository {
	return &Repository{persistence: p}
}

// Initialize loads the persisted entry document. An absent or unreadable
// document yields an empty collection, never an error.
func (r *Repository) Initialize() error {
	if r.persistence == nil {
		return errors.New("journal: no persistence configured")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var loaded []*Entry
	if _, err := r.persistence.Load(store.EntriesKey, &loaded); err != nil {
		return err
	}
	if loaded == nil {
		loaded = []*Entry{}
	}
	r.entries = loaded
	return nil
}

// Entries returns a snapshot copy of the collection, safe to hand to readers
// and to the query functions.
func (r *Repository) Entries() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.entries)
}

// CanAddToday reports whether a new reflection may be recorded for the
// current local calendar day.
func (r *Repository) CanAddToday() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canAddLocked(time.Now())
}

func (r *Repository) canAddLocked(now time.Time) bool {
	if r.AllowMultiplePerDay {
		return true
	}
	for _, e := range r.entries {
		if e.Date.SameDay(now) {
			return false
		}
	}
	return true
}

// AddEntry records today's reflection. The stored text is the fixed prefix
// plus freeText and the date is set to now. Returns ErrDayRecorded when the
// day gate is closed; the collection is left untouched.
func (r *Repository) AddEntry(freeText string, tags []string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canAddLocked(time.Now()) {
		return nil, ErrDayRecorded
	}

	e := New(freeText, tags)
	r.entries = append(r.entries, e)
	return e.Clone(), r.persistLocked()
}

// AddEntryVerbatim appends a fully formed entry, bypassing the prefix
// transform and the day gate. Used for seeding and import.
func (r *Repository) AddEntryVerbatim(e *Entry) error {
	if e == nil {
		return errors.New("journal: nil entry")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := e.Clone()
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	r.entries = append(r.entries, cp)
	return r.persistLocked()
}

// UpdateEntryText replaces the text of the entry with the given id. Date and
// tags are unchanged. Returns ErrNotFound if no entry matches.
func (r *Repository) UpdateEntryText(id string, newText string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID == id {
			e.Text = newText
			return e.Clone(), r.persistLocked()
		}
	}
	return nil, ErrNotFound
}

// DeleteEntry removes the entry with the given id. Deleting an unknown id is
// an idempotent no-op.
func (r *Repository) DeleteEntry(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	removed := false
	for _, e := range r.entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	if !removed {
		return nil
	}
	return r.persistLocked()
}

// ClearAll empties the collection and removes the persisted document.
func (r *Repository) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = []*Entry{}
	if err := r.persistence.Erase(store.EntriesKey); err != nil {
		return fmt.Errorf("journal: clear entries: %w", err)
	}
	return nil
}

// SeedSampleData replaces the collection with three sample reflections dated
// one week, one month, and one year ago.
func (r *Repository) SeedSampleData() error {
	if err := r.ClearAll(); err != nil {
		return err
	}

	now := time.Now()
	samples := []*Entry{
		{
			ID:   uuid.NewString(),
			Date: Timestamp{Time: now.AddDate(0, 0, -7)},
			Text: TextPrefix + "took a long walk in nature and practiced mindfulness",
			Tags: []string{"🌿"},
		},
		{
			ID:   uuid.NewString(),
			Date: Timestamp{Time: now.AddDate(0, -1, 0)},
			Text: TextPrefix + "helped my friend move and strengthened our friendship",
			Tags: []string{"❤️"},
		},
		{
			ID:   uuid.NewString(),
			Date: Timestamp{Time: now.AddDate(-1, 0, 0)},
			Text: TextPrefix + "finished reading a challenging book about quantum physics",
			Tags: []string{"📚"},
		},
	}
	for _, s := range samples {
		if err := r.AddEntryVerbatim(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) persistLocked() error {
	if err := r.persistence.Save(store.EntriesKey, r.entries); err != nil {
		// The in-memory collection already reflects the mutation; the caller
		// should treat this as a warning, not a rollback.
		return fmt.Errorf("journal: save entries: %w", err)
	}
	return nil
}

func snapshot(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}
