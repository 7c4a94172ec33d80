// Package item defines the stored entities of the daybook and the
// repository ports the resolvers consume. Items and aliases are immutable
// values: every mutator returns a new value, and relocation supersedes the
// placement rather than mutating it.
package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/rank"
)

// ID identifies an item.
type ID = placement.ItemID

// NewID generates a fresh item id.
func NewID() ID {
	return uuid.New()
}

// ParseID parses an item id. A token that fails to parse is not id-shaped
// and falls through to alias resolution.
func ParseID(s string) (ID, error) {
	return uuid.Parse(s)
}

// Item is a stored entry: a title under a placement, ordered among its
// siblings by rank.
type Item struct {
	ID        ID
	Title     string
	Body      string
	Placement placement.Placement
	Rank      rank.Rank
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Relocate returns a copy of the item at a new placement and rank. The
// original is unchanged; the store replaces it wholesale on save.
func (i Item) Relocate(p placement.Placement, r rank.Rank, now time.Time) Item {
	i.Placement = p
	i.Rank = r
	i.UpdatedAt = now
	return i
}

// Retitle returns a copy of the item with a new title.
func (i Item) Retitle(title string, now time.Time) Item {
	i.Title = title
	i.UpdatedAt = now
	return i
}

// Alias is a human-typed name for an item. Slug preserves the user's
// spelling; Canonical is the case-folded, Unicode-normalized key used for
// every equality and prefix comparison.
type Alias struct {
	Slug      string
	Canonical string
	ItemID    ID
	CreatedAt time.Time
}
