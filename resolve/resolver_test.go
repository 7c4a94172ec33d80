package resolve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/item"
	"github.com/torvane/daybook/placement"
	"github.com/torvane/daybook/resolve"
)

// 2025-12-06 is a Saturday.
var refDay = placement.NewDay(2025, time.December, 6)

func newResolver(items *memItems, aliases *memAliases, opts ...resolve.Option) *resolve.Resolver {
	return resolve.New(items, aliases, refDay, opts...)
}

func TestResolveRelativeDates(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.DatePlacement(refDay)

	cases := map[string]placement.CalendarDay{
		"today":     refDay,
		"tomorrow":  refDay.AddDays(1),
		"yesterday": refDay.AddDays(-1),
		"+3d":       refDay.AddDays(3),
		"~1d":       refDay.AddDays(-1),
		"+2w":       refDay.AddDays(14),
		"~1w":       refDay.AddDays(-7),
	}
	for text, want := range cases {
		got, err := r.Resolve(ctx, cwd, text)
		require.NoError(t, err, text)
		assert.True(t, got.Equal(placement.DatePlacement(want)), "%s -> %s", text, got)
	}
}

func TestResolveWeekdayJump(t *testing.T) {
	ctx := context.Background()
	cwd := placement.DatePlacement(refDay)

	r := newResolver(newMemItems(), newMemAliases())
	got, err := r.Resolve(ctx, cwd, "+mon")
	require.NoError(t, err)
	day, _ := got.Day()
	assert.Equal(t, "2025-12-08", day.String())

	got, err = r.Resolve(ctx, cwd, "~mon")
	require.NoError(t, err)
	day, _ = got.Day()
	assert.Equal(t, "2025-12-01", day.String())

	// The reference day itself is a Saturday: a jump to Saturday lands a
	// full week away unless same-day matching is enabled.
	got, err = r.Resolve(ctx, cwd, "+sat")
	require.NoError(t, err)
	day, _ = got.Day()
	assert.Equal(t, "2025-12-13", day.String())

	same := newResolver(newMemItems(), newMemAliases(), resolve.WithWeekdaySameDay(true))
	got, err = same.Resolve(ctx, cwd, "+sat")
	require.NoError(t, err)
	day, _ = got.Day()
	assert.Equal(t, "2025-12-06", day.String())
}

func TestResolveNumericLiteralAppends(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	cwd := placement.DatePlacement(refDay).AppendSection(2)

	got, err := r.Resolve(context.Background(), cwd, "4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got.Section())
}

func TestResolveAbsolutePath(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.PermanentPlacement()

	got, err := r.Resolve(ctx, cwd, "/2025-11-16/5/2")
	require.NoError(t, err)
	day, ok := got.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-11-16", day.String())
	assert.Equal(t, []int{5, 2}, got.Section())

	_, err = r.Resolve(ctx, cwd, "/")
	assert.Equal(t, "absolute_path_missing_head", errors.Code(err))

	_, err = r.Resolve(ctx, cwd, "/5/2")
	assert.Equal(t, "absolute_path_invalid_head", errors.Code(err))

	_, err = r.Resolve(ctx, cwd, "/2025-11-16/x")
	assert.Equal(t, "absolute_path_invalid_segment", errors.Code(err))

	_, err = r.Resolve(ctx, cwd, "/2025-11-16/0")
	assert.Equal(t, "absolute_path_invalid_segment", errors.Code(err))
}

func TestResolveExpressionHeadWithSubsections(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.DatePlacement(refDay)

	// Reference day 2025-12-06 is a Saturday; the next Monday is the 8th.
	got, err := r.Resolve(ctx, cwd, "+mon/1")
	require.NoError(t, err)
	day, ok := got.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-12-08", day.String())
	assert.Equal(t, []int{1}, got.Section())

	got, err = r.Resolve(ctx, cwd, "today/2/1")
	require.NoError(t, err)
	day, ok = got.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-12-06", day.String())
	assert.Equal(t, []int{2, 1}, got.Section())

	got, err = r.Resolve(ctx, cwd, "~2d/3")
	require.NoError(t, err)
	day, ok = got.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-12-04", day.String())
	assert.Equal(t, []int{3}, got.Section())

	_, err = r.Resolve(ctx, cwd, "+x/1")
	assert.Equal(t, "absolute_path_invalid_head", errors.Code(err))
}

func TestResolveDotDotStripsSectionWithoutLoading(t *testing.T) {
	items := newMemItems()
	items.loadErr = errRepoDown // ascent below must not touch the repository
	r := newResolver(items, newMemAliases())

	id := item.NewID()
	cwd := placement.ItemPlacement(id).AppendSection(1)

	got, err := r.Resolve(context.Background(), cwd, "..")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(id)))
	assert.Zero(t, items.loadCalls)
}

func TestResolveDotDotAscendsThroughItemHead(t *testing.T) {
	home := placement.DatePlacement(refDay).AppendSection(3)
	parent, _ := placedItem("errands", "errands", home)
	items := newMemItems(parent)
	r := newResolver(items, newMemAliases())

	cwd := placement.ItemPlacement(parent.ID)
	got, err := r.Resolve(context.Background(), cwd, "..")
	require.NoError(t, err)
	assert.True(t, got.Equal(home))

	// A trailing numeric segment descends after the ascent.
	got, err = r.Resolve(context.Background(), cwd, "../2")
	require.NoError(t, err)
	assert.True(t, got.Equal(home.AppendSection(2)))
}

func TestResolveDotDotErrors(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()

	_, err := r.Resolve(ctx, placement.DatePlacement(refDay), "..")
	assert.Equal(t, "invalid_parent", errors.Code(err))

	_, err = r.Resolve(ctx, placement.PermanentPlacement(), "..")
	assert.Equal(t, "invalid_parent", errors.Code(err))

	_, err = r.Resolve(ctx, placement.ItemPlacement(item.NewID()), "..")
	assert.Equal(t, "item_not_found", errors.Code(err))
}

func TestResolveItemID(t *testing.T) {
	it, _ := placedItem("notes", "notes", placement.DatePlacement(refDay))
	items := newMemItems(it)
	r := newResolver(items, newMemAliases())
	ctx := context.Background()

	got, err := r.Resolve(ctx, placement.PermanentPlacement(), it.ID.String())
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(it.ID)))

	_, err = r.Resolve(ctx, placement.PermanentPlacement(), item.NewID().String())
	assert.Equal(t, "not_found", errors.Code(err))
}

func TestResolveExactAliasBeatsPrefix(t *testing.T) {
	plan, planAlias := placedItem("plan", "plan", placement.DatePlacement(refDay))
	planB, planBAlias := placedItem("plan b", "plan-b", placement.DatePlacement(refDay))
	items := newMemItems(plan, planB)
	aliases := newMemAliases(planAlias, planBAlias)
	r := newResolver(items, aliases)

	got, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "plan")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(plan.ID)))
}

func TestResolvePrefixPrefersPriorityWindow(t *testing.T) {
	recent, recentAlias := placedItem("recent", "bace-x7q", placement.DatePlacement(refDay))
	old, oldAlias := placedItem("old", "bace-y2m", placement.DatePlacement(refDay.AddDays(-30)))
	items := newMemItems(recent, old)
	aliases := newMemAliases(recentAlias, oldAlias)
	r := newResolver(items, aliases)

	got, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "b")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(recent.ID)))
}

func TestResolvePrefixAmbiguousOutsideWindow(t *testing.T) {
	a1, alias1 := placedItem("one", "bace-x7q", placement.DatePlacement(refDay.AddDays(-30)))
	a2, alias2 := placedItem("two", "bace-y2m", placement.DatePlacement(refDay.AddDays(-30)))
	items := newMemItems(a1, a2)
	aliases := newMemAliases(alias1, alias2)
	r := newResolver(items, aliases)

	_, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "b")
	assert.Equal(t, "ambiguous_alias_prefix", errors.Code(err))
	assert.ElementsMatch(t, []string{"bace-x7q", "bace-y2m"}, errors.Candidates(err))
}

func TestResolvePriorityLookupFailureDegrades(t *testing.T) {
	it, alias := placedItem("solo", "groceries", placement.DatePlacement(refDay))
	items := newMemItems(it)
	items.listErr = errRepoDown
	aliases := newMemAliases(alias)
	r := newResolver(items, aliases)

	// The priority tier fails, but the full-set tier still resolves.
	got, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "gro")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(it.ID)))
}

func TestResolveAliasNotFound(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())

	_, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "nope")
	assert.Equal(t, "alias_not_found", errors.Code(err))
}

func TestResolveCanonicalizesQuery(t *testing.T) {
	it, alias := placedItem("café list", "café", placement.DatePlacement(refDay))
	items := newMemItems(it)
	aliases := newMemAliases(alias)
	r := newResolver(items, aliases)

	// Decomposed accent and upper case both canonicalize onto the stored key.
	got, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "CAFÉ")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(it.ID)))
}

func TestResolveInjectedCandidatesReplaceAliasTiers(t *testing.T) {
	it, alias := placedItem("pinned", "pinned", placement.DatePlacement(refDay))
	other, otherAlias := placedItem("other", "plain", placement.DatePlacement(refDay))
	items := newMemItems(it, other)
	aliases := newMemAliases(alias, otherAlias)

	r := newResolver(items, aliases, resolve.WithPrefixCandidates(
		func(ctx context.Context) ([]item.Alias, error) {
			return []item.Alias{alias}, nil
		}))

	got, err := r.Resolve(context.Background(), placement.PermanentPlacement(), "p")
	require.NoError(t, err)
	assert.True(t, got.Equal(placement.ItemPlacement(it.ID)))
}
