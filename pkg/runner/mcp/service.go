// Package mcp provides the Model Context Protocol server integration for the
// journal, so agent collaborators can drive the same narrow core interface
// the CLI uses.
package mcp

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/onepct/pkg/journal"
	"tableflip.dev/onepct/pkg/query"
)

// Service coordinates repository-backed operations shared by the MCP tools.
type Service struct {
	Repository *journal.Repository
	Registry   *journal.Registry
}

// NewService builds a service wrapper around the journal core.
func NewService(repo *journal.Repository, reg *journal.Registry) *Service {
	return &Service{Repository: repo, Registry: reg}
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID       string   `json:"id"`
	DateISO  string   `json:"date"`
	DateUnix int64    `json:"dateUnix"`
	Text     string   `json:"text"`
	Tags     []string `json:"tags"`
}

// TagDTO is a transport-friendly projection of a tag definition.
type TagDTO struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// ListOptions captures the history filters accepted by list_entries.
type ListOptions struct {
	Search string
	Tag    string
	Window string
	On     string // ISO date for the custom-day window
}

// ListEntries returns the filtered, date-descending history snapshot.
func (s *Service) ListEntries(ctx context.Context, opts ListOptions) ([]EntryDTO, error) {
	if s.Repository == nil {
		return nil, errors.New("repository is not configured")
	}

	w, err := query.ParseWindow(opts.Window)
	if err != nil {
		return nil, err
	}

	o := query.Options{
		Search: opts.Search,
		Tag:    opts.Tag,
		Window: w,
	}
	if opts.On != "" {
		day, err := time.ParseInLocation("2006-01-02", opts.On, time.Local)
		if err != nil {
			return nil, errors.New("invalid date, expected YYYY-MM-DD")
		}
		o.Window = query.CustomDay
		o.CustomDay = day
	}

	return toDTOs(query.Filter(s.Repository.Entries(), o)), nil
}

// AddEntry records today's reflection.
func (s *Service) AddEntry(ctx context.Context, text string, tags []string) (*EntryDTO, error) {
	if s.Repository == nil {
		return nil, errors.New("repository is not configured")
	}
	e, err := s.Repository.AddEntry(text, tags)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// UpdateEntryText replaces the text of an existing entry.
func (s *Service) UpdateEntryText(ctx context.Context, id, text string) (*EntryDTO, error) {
	if s.Repository == nil {
		return nil, errors.New("repository is not configured")
	}
	e, err := s.Repository.UpdateEntryText(id, text)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

// DeleteEntry removes an entry; unknown ids are a no-op.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if s.Repository == nil {
		return errors.New("repository is not configured")
	}
	return s.Repository.DeleteEntry(id)
}

// Reflect returns entries recorded within one day of daysAgo days before now.
func (s *Service) Reflect(ctx context.Context, daysAgo int) ([]EntryDTO, error) {
	if s.Repository == nil {
		return nil, errors.New("repository is not configured")
	}
	if daysAgo < 0 {
		return nil, errors.New("daysAgo must not be negative")
	}
	return toDTOs(query.EntriesNear(s.Repository.Entries(), daysAgo, time.Now())), nil
}

// CanAddToday reports whether today's reflection is still open. This is the
// only question the reminder scheduler collaborator asks.
func (s *Service) CanAddToday(ctx context.Context) (bool, error) {
	if s.Repository == nil {
		return false, errors.New("repository is not configured")
	}
	return s.Repository.CanAddToday(), nil
}

// ListTags returns the registry definitions in order.
func (s *Service) ListTags(ctx context.Context) ([]TagDTO, error) {
	if s.Registry == nil {
		return nil, errors.New("registry is not configured")
	}
	defs := s.Registry.Tags()
	out := make([]TagDTO, 0, len(defs))
	for i, d := range defs {
		out = append(out, TagDTO{Index: i, ID: d.ID, Symbol: d.Symbol, Description: d.Description})
	}
	return out, nil
}

// AddTag appends a definition to the registry.
func (s *Service) AddTag(ctx context.Context, symbol, description string) (*TagDTO, error) {
	if s.Registry == nil {
		return nil, errors.New("registry is not configured")
	}
	def, err := s.Registry.Add(symbol, description)
	if err != nil {
		return nil, err
	}
	return &TagDTO{Index: len(s.Registry.Tags()) - 1, ID: def.ID, Symbol: def.Symbol, Description: def.Description}, nil
}

// UpdateTag edits the definition at the given position.
func (s *Service) UpdateTag(ctx context.Context, index int, symbol, description string) error {
	if s.Registry == nil {
		return errors.New("registry is not configured")
	}
	return s.Registry.Update(index, symbol, description)
}

// RemoveTag deletes the definition at the given position. Entries keep any
// symbols that referenced it.
func (s *Service) RemoveTag(ctx context.Context, index int) error {
	if s.Registry == nil {
		return errors.New("registry is not configured")
	}
	return s.Registry.Remove(index)
}

// DistinctTagsUsed returns the symbols actually present on entries.
func (s *Service) DistinctTagsUsed(ctx context.Context) ([]string, error) {
	if s.Repository == nil {
		return nil, errors.New("repository is not configured")
	}
	return query.DistinctTagsUsed(s.Repository.Entries()), nil
}

func toDTO(e *journal.Entry) EntryDTO {
	return EntryDTO{
		ID:       e.ID,
		DateISO:  journal.FormatTime(e.Date.Time),
		DateUnix: e.Date.Unix(),
		Text:     e.Text,
		Tags:     append([]string(nil), e.Tags...),
	}
}

func toDTOs(entries []*journal.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}
