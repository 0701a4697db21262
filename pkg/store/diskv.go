package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// Document keys persisted by the journal core. Each key holds one whole
// serialized collection; there are no partial writes and no transactions
// spanning keys.
const (
	EntriesKey = "journalEntries"
	TagsKey    = "customTags"
)

// Persistence is the durable document contract for the journal. Save replaces
// the whole document under key; Load reports absent (false) for missing or
// corrupt documents so callers can fall back to defaults.
type Persistence interface {
	Save(key string, value interface{}) error
	Load(key string, out interface{}) (bool, error)
	Erase(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// TempDir makes writes land via rename, so readers never observe a
		// half-written document.
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Load(key string, out interface{}) (bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(val, out); err != nil {
		// Corrupt or incompatible bytes are treated as absent, never fatal.
		// The caller falls back to its default state.
		fmt.Fprintf(os.Stderr, "store: %s: discarding unreadable document: %v\n", key, err)
		return false, nil
	}
	return true, nil
}

func (p *persistence) Erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}
