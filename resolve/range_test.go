package resolve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/placement"
)

func TestResolveRangePeriods(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.DatePlacement(refDay)

	cases := map[string][2]string{
		"this-week":  {"2025-12-01", "2025-12-07"},
		"tw":         {"2025-12-01", "2025-12-07"},
		"next-week":  {"2025-12-08", "2025-12-14"},
		"this-month": {"2025-12-01", "2025-12-31"},
		"next-month": {"2026-01-01", "2026-01-31"},
	}
	for text, want := range cases {
		got, err := r.ResolveRange(ctx, cwd, text)
		require.NoError(t, err, text)
		require.Equal(t, placement.RangeDays, got.Kind(), text)
		from, to := got.Days()
		assert.Equal(t, want[0], from.String(), text)
		assert.Equal(t, want[1], to.String(), text)
	}
}

func TestResolveRangeTodayIsNotAPeriod(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())

	got, err := r.ResolveRange(context.Background(), placement.PermanentPlacement(), "today")
	require.NoError(t, err)
	require.Equal(t, placement.RangeSingle, got.Kind())
	assert.True(t, got.Single().Equal(placement.DatePlacement(refDay)))
}

func TestResolveRangeDates(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.PermanentPlacement()

	got, err := r.ResolveRange(ctx, cwd, "2025-11-16..2025-11-20")
	require.NoError(t, err)
	require.Equal(t, placement.RangeDays, got.Kind())
	from, to := got.Days()
	assert.Equal(t, "2025-11-16", from.String())
	assert.Equal(t, "2025-11-20", to.String())

	_, err = r.ResolveRange(ctx, cwd, "2025-11-20..2025-11-16")
	assert.Equal(t, "invalid_range_order", errors.Code(err))
}

func TestResolveRangeNumericUnderCwd(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	cwd := placement.DatePlacement(refDay)

	got, err := r.ResolveRange(context.Background(), cwd, "3..5")
	require.NoError(t, err)
	require.Equal(t, placement.RangeSections, got.Kind())
	parent, from, to := got.Sections()
	assert.True(t, parent.Equal(cwd))
	assert.Equal(t, 3, from)
	assert.Equal(t, 5, to)
}

func TestResolveRangeNumericWithPrefix(t *testing.T) {
	it, alias := placedItem("groceries", "groceries", placement.DatePlacement(refDay))
	r := newResolver(newMemItems(it), newMemAliases(alias))
	ctx := context.Background()
	cwd := placement.PermanentPlacement()

	got, err := r.ResolveRange(ctx, cwd, "2025-11-16/2..4")
	require.NoError(t, err)
	require.Equal(t, placement.RangeSections, got.Kind())
	parent, from, to := got.Sections()
	day, ok := parent.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-11-16", day.String())
	assert.Equal(t, 2, from)
	assert.Equal(t, 4, to)

	got, err = r.ResolveRange(ctx, cwd, "groceries/2..4")
	require.NoError(t, err)
	parent, _, _ = got.Sections()
	assert.True(t, parent.Equal(placement.ItemPlacement(it.ID)))

	// A reversed span is rejected even with a valid shared parent.
	_, err = r.ResolveRange(ctx, cwd, "2025-11-16/5..3")
	assert.Equal(t, "invalid_range_order", errors.Code(err))

	// Prefix heads accept the token grammar; the Monday after the
	// reference Saturday 2025-12-06 is the 8th.
	got, err = r.ResolveRange(ctx, cwd, "+mon/2..4")
	require.NoError(t, err)
	parent, _, _ = got.Sections()
	day, ok = parent.Day()
	require.True(t, ok)
	assert.Equal(t, "2025-12-08", day.String())
}

func TestResolveRangeLocatorEndpoints(t *testing.T) {
	r := newResolver(newMemItems(), newMemAliases())
	ctx := context.Background()
	cwd := placement.DatePlacement(refDay)

	got, err := r.ResolveRange(ctx, cwd, "today..+3d")
	require.NoError(t, err)
	require.Equal(t, placement.RangeDays, got.Kind())
	from, to := got.Days()
	assert.Equal(t, "2025-12-06", from.String())
	assert.Equal(t, "2025-12-09", to.String())

	_, err = r.ResolveRange(ctx, cwd, "+3d..today")
	assert.Equal(t, "invalid_range_order", errors.Code(err))

	// Identical endpoints collapse to a single scope.
	got, err = r.ResolveRange(ctx, cwd, "today..today")
	require.NoError(t, err)
	assert.Equal(t, placement.RangeSingle, got.Kind())
}

func TestResolveRangeDifferentParents(t *testing.T) {
	abc, abcAlias := placedItem("abc", "abc", placement.DatePlacement(refDay))
	def, defAlias := placedItem("def", "def", placement.DatePlacement(refDay))
	r := newResolver(newMemItems(abc, def), newMemAliases(abcAlias, defAlias))

	_, err := r.ResolveRange(context.Background(), placement.PermanentPlacement(), "abc..def")
	assert.Equal(t, "range_different_parents", errors.Code(err))
}

func TestResolveRangeSingleAlias(t *testing.T) {
	it, alias := placedItem("groceries", "groceries", placement.DatePlacement(refDay))
	r := newResolver(newMemItems(it), newMemAliases(alias))

	got, err := r.ResolveRange(context.Background(), placement.PermanentPlacement(), "groceries")
	require.NoError(t, err)
	require.Equal(t, placement.RangeSingle, got.Kind())
	assert.True(t, got.Single().Equal(placement.ItemPlacement(it.ID)))
}
