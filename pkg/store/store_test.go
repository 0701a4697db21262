package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string             { return t.path }
func (t testConfig) UserName() string             { return "" }
func (t testConfig) HasCompletedOnboarding() bool { return false }

type testEntry struct {
	ID   string   `json:"id"`
	Date string   `json:"date"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	saved := []testEntry{
		{ID: uuid.NewString(), Date: time.Now().UTC().Format(time.RFC3339), Text: "took a walk", Tags: []string{"🌿"}},
		{ID: uuid.NewString(), Date: time.Now().UTC().Format(time.RFC3339), Text: "read a book", Tags: []string{"📚", "😊"}},
	}
	if err := p.Save(EntriesKey, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded []testEntry
	found, err := p.Load(EntriesKey, &loaded)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatal("expected the saved document to be found")
	}
	if len(loaded) != len(saved) {
		t.Fatalf("expected %d records, got %d", len(saved), len(loaded))
	}
	for i := range saved {
		if loaded[i].ID != saved[i].ID || loaded[i].Text != saved[i].Text {
			t.Fatalf("record %d differs: %+v vs %+v", i, loaded[i], saved[i])
		}
		if len(loaded[i].Tags) != len(saved[i].Tags) {
			t.Fatalf("record %d lost tags: %+v", i, loaded[i])
		}
	}
}

func TestLoadAbsentDocument(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	var out []testEntry
	found, err := p.Load(EntriesKey, &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatal("expected absent for a key never written")
	}
}

func TestLoadCorruptDocumentTreatedAsAbsent(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.WriteFile(filepath.Join(base, TagsKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt bytes: %v", err)
	}

	var out []testEntry
	found, err := p.Load(TagsKey, &out)
	if err != nil {
		t.Fatalf("expected corrupt bytes to not be an error, got %v", err)
	}
	if found {
		t.Fatal("expected corrupt document to be treated as absent")
	}
}

func TestEraseIsIdempotent(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Save(EntriesKey, []testEntry{{ID: "x"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Erase(EntriesKey); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase(EntriesKey); err != nil {
		t.Fatalf("second erase: %v", err)
	}

	var out []testEntry
	found, err := p.Load(EntriesKey, &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatal("expected erased document to be absent")
	}
}

func TestDocumentsAreIndependent(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Save(EntriesKey, []testEntry{{ID: "e"}}); err != nil {
		t.Fatalf("save entries: %v", err)
	}
	if err := p.Erase(TagsKey); err != nil {
		t.Fatalf("erase tags: %v", err)
	}

	var out []testEntry
	found, err := p.Load(EntriesKey, &out)
	if err != nil || !found {
		t.Fatalf("expected entries untouched by tag erase, found=%v err=%v", found, err)
	}
}
