package resolve_test

import (
	"context"
	"sort"
	"time"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/resolve"
)

func canonicalFor(slug string) string { return resolve.Canonical(slug) }

// memItems is an in-memory item repository with failure injection.
type memItems struct {
	byID      map[item.ID]item.Item
	loadCalls int
	loadErr   error
	listErr   error
}

func newMemItems(items ...item.Item) *memItems {
	m := &memItems{byID: make(map[item.ID]item.Item)}
	for _, it := range items {
		m.byID[it.ID] = it
	}
	return m
}

func (m *memItems) Load(ctx context.Context, id item.ID) (*item.Item, error) {
	m.loadCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if it, ok := m.byID[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (m *memItems) Save(ctx context.Context, it item.Item) error {
	m.byID[it.ID] = it
	return nil
}

func (m *memItems) Delete(ctx context.Context, id item.ID) error {
	delete(m.byID, id)
	return nil
}

func (m *memItems) ListByPlacement(ctx context.Context, r placement.DirectoryRange) ([]item.Item, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []item.Item
	for _, it := range m.byID {
		if inRange(it.Placement, r) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func inRange(p placement.Placement, r placement.DirectoryRange) bool {
	switch r.Kind() {
	case placement.RangeDays:
		day, ok := p.Day()
		if !ok {
			return false
		}
		from, to := r.Days()
		return !day.Before(from) && !day.After(to)
	case placement.RangeSections:
		parent, fromN, toN := r.Sections()
		own, ok := p.Parent()
		if !ok || !own.Equal(parent) {
			return false
		}
		section := p.Section()
		last := section[len(section)-1]
		return last >= fromN && last <= toN
	default:
		return p.Equal(r.Single())
	}
}

// memAliases is an in-memory alias repository with failure injection.
type memAliases struct {
	byCanonical map[string]item.Alias
	listErr     error
	loadErr     error
}

func newMemAliases(aliases ...item.Alias) *memAliases {
	m := &memAliases{byCanonical: make(map[string]item.Alias)}
	for _, a := range aliases {
		m.byCanonical[a.Canonical] = a
	}
	return m
}

func (m *memAliases) Load(ctx context.Context, canonical string) (*item.Alias, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if a, ok := m.byCanonical[canonical]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *memAliases) Save(ctx context.Context, a item.Alias) error {
	m.byCanonical[a.Canonical] = a
	return nil
}

func (m *memAliases) Delete(ctx context.Context, canonical string) error {
	delete(m.byCanonical, canonical)
	return nil
}

func (m *memAliases) List(ctx context.Context) ([]item.Alias, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]item.Alias, 0, len(m.byCanonical))
	for _, a := range m.byCanonical {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out, nil
}

var errRepoDown = errors.New("repository unavailable")

// placedItem builds an item under the given placement with an alias.
func placedItem(title, slug string, p placement.Placement) (item.Item, item.Alias) {
	it := item.Item{
		ID:        item.NewID(),
		Title:     title,
		Placement: p,
		Rank:      "a0",
		CreatedAt: time.Unix(0, 0).UTC(),
		UpdatedAt: time.Unix(0, 0).UTC(),
	}
	a := item.Alias{
		Slug:      slug,
		Canonical: canonicalFor(slug),
		ItemID:    it.ID,
		CreatedAt: it.CreatedAt,
	}
	return it, a
}
