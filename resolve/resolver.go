// Package resolve turns parsed locator and range expressions into concrete
// placements, consulting the item and alias repositories. The reference
// "today", the timezone, and any candidate override are injected at
// construction; nothing here reads the wall clock or global state, so
// resolution is deterministic and testable.
package resolve

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/locator"
	"github.com/torvane/daybook/placement"
)

// priorityWindowDays bounds the priority set: aliases of items whose
// date-head lies within this many days of the reference day, either side,
// win prefix resolution over the full set.
const priorityWindowDays = 7

// CandidateFunc supplies an explicit candidate list that replaces the alias
// tiers entirely, scoping resolution to a known subset.
type CandidateFunc func(ctx context.Context) ([]item.Alias, error)

// Resolver resolves locator expressions against a current location.
type Resolver struct {
	items   item.Repository
	aliases item.AliasRepository

	today       placement.CalendarDay
	timezone    string
	jumpSameDay bool
	windowDays  int
	candidates  CandidateFunc
	log         *zap.SugaredLogger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTimezone records the IANA timezone the reference day was observed in.
func WithTimezone(tz string) Option {
	return func(r *Resolver) { r.timezone = tz }
}

// WithWeekdaySameDay controls whether a weekday jump issued on that same
// weekday resolves to the reference day itself (true) or strictly to the
// next occurrence in the jump direction (false, the default).
func WithWeekdaySameDay(sameDay bool) Option {
	return func(r *Resolver) { r.jumpSameDay = sameDay }
}

// WithPriorityWindow overrides the day window used for alias prefix
// priority. Non-positive values keep the default.
func WithPriorityWindow(days int) Option {
	return func(r *Resolver) {
		if days > 0 {
			r.windowDays = days
		}
	}
}

// WithPrefixCandidates injects an explicit candidate list, replacing the
// exact-alias and tiered-prefix lookups.
func WithPrefixCandidates(fn CandidateFunc) Option {
	return func(r *Resolver) { r.candidates = fn }
}

// WithLogger attaches a logger for resolution tracing.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Resolver) { r.log = log }
}

// New constructs a resolver over the given repositories with today as the
// reference day for every relative expression.
func New(items item.Repository, aliases item.AliasRepository, today placement.CalendarDay, opts ...Option) *Resolver {
	r := &Resolver{
		items:      items,
		aliases:    aliases,
		today:      today,
		windowDays: priorityWindowDays,
		log:        zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today returns the injected reference day.
func (r *Resolver) Today() placement.CalendarDay { return r.today }

// Timezone returns the injected timezone identifier.
func (r *Resolver) Timezone() string { return r.timezone }

// Resolve parses and resolves raw locator text in one step.
func (r *Resolver) Resolve(ctx context.Context, cwd placement.Placement, text string) (placement.Placement, error) {
	expr, err := locator.Parse(text)
	if err != nil {
		return placement.Placement{}, err
	}
	return r.ResolvePath(ctx, cwd, expr)
}

// ResolvePath resolves a parsed expression against the current location.
func (r *Resolver) ResolvePath(ctx context.Context, cwd placement.Placement, expr locator.Expr) (placement.Placement, error) {
	switch e := expr.(type) {
	case locator.RelativeDate:
		return placement.DatePlacement(r.today.AddDays(e.Days)), nil

	case locator.Offset:
		return placement.DatePlacement(r.today.AddDays(e.Days())), nil

	case locator.WeekdayJump:
		return placement.DatePlacement(r.jumpTarget(e)), nil

	case locator.NumericLiteral:
		return cwd.AppendSection(e.Value), nil

	case locator.DotDotChain:
		return r.resolveDotDot(ctx, cwd, e)

	case locator.AbsolutePath:
		return r.resolveAbsolute(ctx, e)

	case locator.AliasOrID:
		return r.resolveToken(ctx, e.Text)

	default:
		return placement.Placement{}, errors.AssertionFailedf("unhandled locator expression %T", expr)
	}
}

// jumpTarget finds the nearest matching weekday in the jump direction.
func (r *Resolver) jumpTarget(jump locator.WeekdayJump) placement.CalendarDay {
	if r.jumpSameDay && r.today.Weekday() == jump.Weekday {
		return r.today
	}
	day := r.today.AddDays(jump.Sign)
	for day.Weekday() != jump.Weekday {
		day = day.AddDays(jump.Sign)
	}
	return day
}

// resolveDotDot ascends one level per '..': a non-empty section always
// strips its last entry first; an item head ascends to the item's own
// stored placement; a date or permanent head with an empty section is the
// top and has no parent.
func (r *Resolver) resolveDotDot(ctx context.Context, cwd placement.Placement, chain locator.DotDotChain) (placement.Placement, error) {
	current := cwd
	for i := 0; i < chain.Count; i++ {
		if parent, ok := current.Parent(); ok {
			current = parent
			continue
		}
		id, ok := current.Item()
		if !ok {
			return placement.Placement{}, errors.Wrapf(errors.ErrInvalidParent, "ascending from %s", current)
		}
		it, err := r.items.Load(ctx, id)
		if err != nil {
			return placement.Placement{}, err
		}
		if it == nil {
			return placement.Placement{}, errors.Wrapf(errors.ErrItemNotFound, "ascending from %s", id)
		}
		current = it.Placement
	}
	return r.appendSegments(current, chain.Tail)
}

// resolveAbsolute resolves a path: the head must address a day or an item,
// so relative dates, offsets, weekday jumps, date literals, item ids, and
// aliases all qualify; the remaining segments are numeric subsections.
func (r *Resolver) resolveAbsolute(ctx context.Context, path locator.AbsolutePath) (placement.Placement, error) {
	if len(path.Segments) == 0 {
		return placement.Placement{}, errors.WithStack(errors.ErrAbsolutePathMissingHead)
	}
	head := path.Segments[0]
	if head == "." || head == ".." || isNumeric(head) {
		return placement.Placement{}, errors.Wrapf(errors.ErrAbsolutePathInvalidHead, "%q", head)
	}
	base, err := r.resolveHead(ctx, head)
	if err != nil {
		return placement.Placement{}, err
	}
	return r.appendSegments(base, path.Segments[1:])
}

// resolveHead resolves a path head through the single-token grammar, so
// "+mon/1" and "~2d/3" address subsections of the jump or offset target.
// Tokens the grammar does not claim fall through to the date, item id, and
// alias tiers.
func (r *Resolver) resolveHead(ctx context.Context, head string) (placement.Placement, error) {
	expr, err := locator.Parse(head)
	if err != nil {
		return placement.Placement{}, errors.Wrapf(errors.ErrAbsolutePathInvalidHead, "%q", head)
	}
	switch e := expr.(type) {
	case locator.RelativeDate:
		return placement.DatePlacement(r.today.AddDays(e.Days)), nil
	case locator.Offset:
		return placement.DatePlacement(r.today.AddDays(e.Days())), nil
	case locator.WeekdayJump:
		return placement.DatePlacement(r.jumpTarget(e)), nil
	case locator.AliasOrID:
		return r.resolveToken(ctx, e.Text)
	default:
		return placement.Placement{}, errors.Wrapf(errors.ErrAbsolutePathInvalidHead, "%q", head)
	}
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// appendSegments appends numeric path segments in order.
func (r *Resolver) appendSegments(base placement.Placement, segments []string) (placement.Placement, error) {
	current := base
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n <= 0 {
			return placement.Placement{}, errors.Wrapf(errors.ErrAbsolutePathInvalidSegment, "%q", seg)
		}
		current = current.AppendSection(n)
	}
	return current, nil
}

// resolveToken resolves a bare token through the tiers of §resolution:
// date literal, item id, exact alias, priority-set prefix, full-set prefix.
// An injected candidate list replaces the alias tiers entirely.
func (r *Resolver) resolveToken(ctx context.Context, token string) (placement.Placement, error) {
	if placement.IsDayString(token) {
		day, err := placement.ParseDay(token)
		if err != nil {
			return placement.Placement{}, err
		}
		return placement.DatePlacement(day), nil
	}

	if id, err := item.ParseID(token); err == nil {
		it, err := r.items.Load(ctx, id)
		if err != nil {
			return placement.Placement{}, err
		}
		if it == nil {
			return placement.Placement{}, errors.Wrapf(errors.ErrNotFound, "item id %s", token)
		}
		return placement.ItemPlacement(it.ID), nil
	}

	if r.candidates != nil {
		cands, err := r.candidates(ctx)
		if err != nil {
			return placement.Placement{}, err
		}
		return r.resolveWithin(token, cands)
	}

	// Exact alias match on the canonical key.
	exact, err := r.aliases.Load(ctx, Canonical(token))
	if err != nil {
		return placement.Placement{}, err
	}
	if exact != nil {
		return placement.ItemPlacement(exact.ItemID), nil
	}

	// Priority tier: aliases of recently placed items. A failing lookup
	// degrades to an empty set rather than failing resolution.
	priority, err := r.priorityAliases(ctx)
	if err != nil {
		r.log.Warnw("priority alias lookup failed, degrading to empty set",
			"prefix", token,
			"error", err)
		priority = nil
	}
	if matches := MatchPrefix(token, priority); len(matches) == 1 {
		return placement.ItemPlacement(matches[0].ItemID), nil
	}

	// Full set.
	all, err := r.aliases.List(ctx)
	if err != nil {
		return placement.Placement{}, err
	}
	return r.resolveWithin(token, all)
}

// resolveWithin resolves a token against a fixed candidate set: exact match
// first, then prefix.
func (r *Resolver) resolveWithin(token string, candidates []item.Alias) (placement.Placement, error) {
	if exact := matchExact(token, candidates); exact != nil {
		return placement.ItemPlacement(exact.ItemID), nil
	}
	matches := MatchPrefix(token, candidates)
	switch len(matches) {
	case 0:
		return placement.Placement{}, errors.Wrapf(errors.ErrAliasNotFound, "%q", token)
	case 1:
		return placement.ItemPlacement(matches[0].ItemID), nil
	default:
		slugs := make([]string, len(matches))
		for i, m := range matches {
			slugs[i] = m.Slug
		}
		return placement.Placement{}, errors.WithCandidates(
			errors.Wrapf(errors.ErrAmbiguousAliasPrefix, "%q", token), slugs)
	}
}

// priorityAliases collects the aliases of items whose date-head falls within
// the priority window around the reference day.
func (r *Resolver) priorityAliases(ctx context.Context) ([]item.Alias, error) {
	window := placement.DayRange(
		r.today.AddDays(-r.windowDays),
		r.today.AddDays(r.windowDays),
	)
	recent, err := r.items.ListByPlacement(ctx, window)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}
	recentIDs := make(map[item.ID]bool, len(recent))
	for _, it := range recent {
		recentIDs[it.ID] = true
	}

	all, err := r.aliases.List(ctx)
	if err != nil {
		return nil, err
	}
	var priority []item.Alias
	for _, a := range all {
		if recentIDs[a.ItemID] {
			priority = append(priority, a)
		}
	}
	return priority, nil
}
