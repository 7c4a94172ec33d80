// Package workflow implements the daybook operations behind the CLI:
// creating, listing, and moving items and managing aliases. Each operation
// resolves its locator arguments, consults the rank service for ordering,
// and tags resolution failures with the argument that caused them.
package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/rank"
	"github.com/torvane/daybook/resolve"
)

// Service executes daybook workflows over the repository ports.
type Service struct {
	items    item.Repository
	aliases  item.AliasRepository
	resolver *resolve.Resolver
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewService wires a workflow service. The clock is injectable for tests.
func NewService(items item.Repository, aliases item.AliasRepository, resolver *resolve.Resolver, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		items:    items,
		aliases:  aliases,
		resolver: resolver,
		now:      time.Now,
		log:      log,
	}
}

// WithClock replaces the service clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create resolves the locator (empty means today), ranks the new item after
// its siblings, and saves it.
func (s *Service) Create(ctx context.Context, cwd placement.Placement, title, body, locator string) (item.Item, error) {
	if locator == "" {
		locator = "today"
	}
	target, err := s.resolver.Resolve(ctx, cwd, locator)
	if err != nil {
		return item.Item{}, errors.WithFieldPath(err, "locator")
	}

	r, err := s.tailRank(ctx, target)
	if err != nil {
		return item.Item{}, err
	}

	now := s.now().UTC()
	it := item.Item{
		ID:        item.NewID(),
		Title:     title,
		Body:      body,
		Placement: target,
		Rank:      r,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.items.Save(ctx, it); err != nil {
		return item.Item{}, err
	}
	s.log.Infow("Item created",
		"id", it.ID,
		"placement", target.String(),
		"rank", r,
	)
	return it, nil
}

// List resolves the range (empty means today) and returns its items in rank
// order.
func (s *Service) List(ctx context.Context, cwd placement.Placement, rangeText string) ([]item.Item, error) {
	if rangeText == "" {
		rangeText = "today"
	}
	rng, err := s.resolver.ResolveRange(ctx, cwd, rangeText)
	if err != nil {
		return nil, errors.WithFieldPath(err, "range")
	}
	return s.items.ListByPlacement(ctx, rng)
}

// Move relocates an item to a destination placement. With beforeText or
// afterText set, the item is ranked relative to that sibling; otherwise it
// goes to the tail.
func (s *Service) Move(ctx context.Context, cwd placement.Placement, itemText, destText, beforeText, afterText string) (item.Item, error) {
	it, err := s.resolveItem(ctx, cwd, itemText)
	if err != nil {
		return item.Item{}, errors.WithFieldPath(err, "item")
	}

	dest, err := s.resolver.Resolve(ctx, cwd, destText)
	if err != nil {
		return item.Item{}, errors.WithFieldPath(err, "destination")
	}

	siblings, err := s.siblingRanks(ctx, dest, it.ID)
	if err != nil {
		return item.Item{}, err
	}

	var r rank.Rank
	switch {
	case beforeText != "":
		r, err = s.relativeRank(ctx, cwd, beforeText, siblings, rank.Before)
		if err != nil {
			return item.Item{}, errors.WithFieldPath(err, "before")
		}
	case afterText != "":
		r, err = s.relativeRank(ctx, cwd, afterText, siblings, rank.After)
		if err != nil {
			return item.Item{}, errors.WithFieldPath(err, "after")
		}
	default:
		r, err = rank.Tail(siblings)
		if err != nil {
			return item.Item{}, err
		}
	}

	moved := it.Relocate(dest, r, s.now().UTC())
	if err := s.items.Save(ctx, moved); err != nil {
		return item.Item{}, err
	}
	s.log.Infow("Item moved",
		"id", moved.ID,
		"placement", dest.String(),
		"rank", r,
	)
	return moved, nil
}

// AddAlias names an item.
func (s *Service) AddAlias(ctx context.Context, cwd placement.Placement, itemText, slug string) (item.Alias, error) {
	it, err := s.resolveItem(ctx, cwd, itemText)
	if err != nil {
		return item.Alias{}, errors.WithFieldPath(err, "item")
	}

	a := item.Alias{
		Slug:      slug,
		Canonical: resolve.Canonical(slug),
		ItemID:    it.ID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.aliases.Save(ctx, a); err != nil {
		return item.Alias{}, err
	}
	s.log.Infow("Alias added", "slug", slug, "item_id", it.ID)
	return a, nil
}

// RemoveAlias deletes an alias by slug; removing an unknown slug is an
// alias_not_found failure so typos surface.
func (s *Service) RemoveAlias(ctx context.Context, slug string) error {
	canonical := resolve.Canonical(slug)
	existing, err := s.aliases.Load(ctx, canonical)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrapf(errors.ErrAliasNotFound, "%q", slug)
	}
	return s.aliases.Delete(ctx, canonical)
}

// Aliases returns every alias, sorted by canonical slug.
func (s *Service) Aliases(ctx context.Context) ([]item.Alias, error) {
	return s.aliases.List(ctx)
}

// resolveItem resolves a locator that must name an item, not a date or a
// subsection, and loads it.
func (s *Service) resolveItem(ctx context.Context, cwd placement.Placement, text string) (item.Item, error) {
	p, err := s.resolver.Resolve(ctx, cwd, text)
	if err != nil {
		return item.Item{}, err
	}
	id, ok := p.Item()
	if !ok || len(p.Section()) != 0 {
		return item.Item{}, errors.Newf("%q does not name an item", text)
	}
	it, err := s.items.Load(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	if it == nil {
		return item.Item{}, errors.Wrapf(errors.ErrItemNotFound, "%s", id)
	}
	return *it, nil
}

// siblingRanks collects the ranks already in use at the destination,
// excluding the moving item itself so a move within a directory does not
// collide with its own rank.
func (s *Service) siblingRanks(ctx context.Context, dest placement.Placement, moving item.ID) ([]rank.Rank, error) {
	siblings, err := s.items.ListByPlacement(ctx, placement.SingleRange(dest))
	if err != nil {
		return nil, err
	}
	ranks := make([]rank.Rank, 0, len(siblings))
	for _, sib := range siblings {
		if sib.ID == moving {
			continue
		}
		ranks = append(ranks, sib.Rank)
	}
	return ranks, nil
}

// relativeRank resolves the sibling locator and ranks against its rank via
// the given placer (rank.Before or rank.After).
func (s *Service) relativeRank(ctx context.Context, cwd placement.Placement, siblingText string, existing []rank.Rank, place func(rank.Rank, []rank.Rank) (rank.Rank, error)) (rank.Rank, error) {
	sib, err := s.resolveItem(ctx, cwd, siblingText)
	if err != nil {
		return "", err
	}
	return place(sib.Rank, existing)
}

func (s *Service) tailRank(ctx context.Context, target placement.Placement) (rank.Rank, error) {
	ranks, err := s.siblingRanks(ctx, target, item.ID{})
	if err != nil {
		return "", err
	}
	return rank.Tail(ranks)
}
