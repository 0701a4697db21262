package journal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/onepct/pkg/store"
)

// ErrIndexOutOfRange is returned by Registry.Update and Registry.Remove when
// the ordinal position does not exist.
var ErrIndexOutOfRange = errors.New("journal: tag index out of range")

// Registry owns the user's tag definitions. It is the single source of truth
// mapping symbols to descriptions; entries keep free-standing symbol strings
// and are never touched when a definition is edited or removed.
type Registry struct {
	mu          sync.Mutex
	persistence store.Persistence
	tags        []TagDefinition
}

func NewRegistry(p store.Persistence) *Registry {
	return &Registry{persistence: p}
}

// Initialize loads the persisted tag document. An absent, unreadable, or
// empty document triggers reseeding with the six defaults; a non-empty
// collection is never overwritten.
func (g *Registry) Initialize() error {
	if g.persistence == nil {
		return errors.New("journal: no persistence configured")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var loaded []TagDefinition
	if _, err := g.persistence.Load(store.TagsKey, &loaded); err != nil {
		return err
	}
	if len(loaded) > 0 {
		g.tags = loaded
		return nil
	}
	g.tags = DefaultTags()
	return g.persistLocked()
}

// Tags returns a snapshot copy of the definitions in order.
func (g *Registry) Tags() []TagDefinition {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]TagDefinition(nil), g.tags...)
}

// Add appends a definition with a fresh id and persists. Empty input is not
// validated here; presentation layers may block it before calling.
func (g *Registry) Add(symbol, description string) (TagDefinition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	def := TagDefinition{ID: uuid.NewString(), Symbol: symbol, Description: description}
	g.tags = append(g.tags, def)
	return def, g.persistLocked()
}

// Update replaces the symbol and description at the given ordinal position.
func (g *Registry) Update(index int, symbol, description string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.tags) {
		return ErrIndexOutOfRange
	}
	g.tags[index].Symbol = symbol
	g.tags[index].Description = description
	return g.persistLocked()
}

// Remove deletes the definition at the given ordinal position.
func (g *Registry) Remove(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.tags) {
		return ErrIndexOutOfRange
	}
	g.tags = append(g.tags[:index], g.tags[index+1:]...)
	return g.persistLocked()
}

func (g *Registry) persistLocked() error {
	if err := g.persistence.Save(store.TagsKey, g.tags); err != nil {
		return fmt.Errorf("journal: save tags: %w", err)
	}
	return nil
}
