package journal

import (
	"time"

	"github.com/google/uuid"
)

// TextPrefix is prepended to every reflection captured through New. Entries
// imported verbatim keep their text as-is.
const TextPrefix = "To become 1% better today, I "

// New builds a dated entry from the user's free text, applying the fixed
// reflection prefix. The date is set once at creation and never changes.
func New(freeText string, tags []string) *Entry {
	return &Entry{
		ID:   uuid.NewString(),
		Date: Timestamp{Time: time.Now()},
		Text: TextPrefix + freeText,
		Tags: append([]string(nil), tags...),
	}
}

// Entry is one journal reflection for a single calendar day. Tags are the
// symbols picked at creation, in selection order. They are plain strings with
// no referential integrity against the tag registry.
type Entry struct {
	ID   string    `json:"id"`
	Date Timestamp `json:"date"`
	Text string    `json:"text"`
	Tags []string  `json:"tags"`
}

func (e *Entry) HasTag(symbol string) bool {
	for _, t := range e.Tags {
		if t == symbol {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so snapshots handed to readers cannot alias the
// repository's state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tags = append([]string(nil), e.Tags...)
	return &cp
}
