package item

import (
	"context"

	"github.com/torvane/daybook/placement"
)

// Repository is the item storage port consumed by the resolvers and
// workflows. Implementations return errors as values; a missing item is a
// nil pointer with a nil error, never a sentinel, so resolution layers
// decide which taxonomy code applies.
type Repository interface {
	// Load returns the item with the given id, or nil when absent.
	Load(ctx context.Context, id ID) (*Item, error)
	// Save inserts or replaces the item.
	Save(ctx context.Context, it Item) error
	// Delete removes the item; deleting an absent item is not an error.
	Delete(ctx context.Context, id ID) error
	// ListByPlacement returns the items whose placement falls inside the
	// range, ordered by rank. Used for sibling rank scans and priority-set
	// membership.
	ListByPlacement(ctx context.Context, r placement.DirectoryRange) ([]Item, error)
}

// AliasRepository is the alias storage port.
type AliasRepository interface {
	// Load returns the alias with the given canonical slug, or nil.
	Load(ctx context.Context, canonical string) (*Alias, error)
	// Save inserts or replaces the alias.
	Save(ctx context.Context, a Alias) error
	// Delete removes the alias; deleting an absent alias is not an error.
	Delete(ctx context.Context, canonical string) error
	// List returns every alias, sorted by canonical slug.
	List(ctx context.Context) ([]Alias, error)
}
