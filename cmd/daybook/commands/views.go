package commands

import (
	"time"

	"github.com/torvane/daybook/item"
)

// ItemView is the serialized form of an item for --json and --yaml output.
type ItemView struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Body      string    `json:"body,omitempty" yaml:"body,omitempty"`
	Placement string    `json:"placement" yaml:"placement"`
	Rank      string    `json:"rank" yaml:"rank"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

func itemView(it item.Item) ItemView {
	return ItemView{
		ID:        it.ID.String(),
		Title:     it.Title,
		Body:      it.Body,
		Placement: it.Placement.String(),
		Rank:      string(it.Rank),
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func itemViews(items []item.Item) []ItemView {
	views := make([]ItemView, len(items))
	for i, it := range items {
		views[i] = itemView(it)
	}
	return views
}

// AliasView is the serialized form of an alias.
type AliasView struct {
	Slug      string `json:"slug" yaml:"slug"`
	Canonical string `json:"canonical" yaml:"canonical"`
	ItemID    string `json:"item_id" yaml:"item_id"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

func aliasViews(aliases []item.Alias, prefixes map[string]string) []AliasView {
	views := make([]AliasView, len(aliases))
	for i, a := range aliases {
		views[i] = AliasView{
			Slug:      a.Slug,
			Canonical: a.Canonical,
			ItemID:    a.ItemID.String(),
			Prefix:    prefixes[a.Canonical],
		}
	}
	return views
}
