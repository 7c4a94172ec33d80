package locator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvane/daybook/errors"
)

func TestParseRelativeDateKeywords(t *testing.T) {
	cases := map[string]int{
		"today":     0,
		"tomorrow":  1,
		"yesterday": -1,
		"Today":     0, // case-insensitive
	}
	for in, days := range cases {
		expr, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, RelativeDate{Days: days}, expr, in)
	}
}

func TestParseOffsets(t *testing.T) {
	cases := map[string]Offset{
		"+3d":  {Sign: 1, Amount: 3, Unit: UnitDay},
		"~2d":  {Sign: -1, Amount: 2, Unit: UnitDay},
		"+1w":  {Sign: 1, Amount: 1, Unit: UnitWeek},
		"~4w":  {Sign: -1, Amount: 4, Unit: UnitWeek},
		"+0d":  {Sign: 1, Amount: 0, Unit: UnitDay},
		"+10w": {Sign: 1, Amount: 10, Unit: UnitWeek},
	}
	for in, want := range cases {
		expr, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, expr, in)
	}

	assert.Equal(t, 3, Offset{Sign: 1, Amount: 3, Unit: UnitDay}.Days())
	assert.Equal(t, -28, Offset{Sign: -1, Amount: 4, Unit: UnitWeek}.Days())
}

func TestParseWeekdayJumps(t *testing.T) {
	expr, err := Parse("+fri")
	require.NoError(t, err)
	assert.Equal(t, WeekdayJump{Sign: 1, Weekday: time.Friday}, expr)

	expr, err = Parse("~Mon")
	require.NoError(t, err)
	assert.Equal(t, WeekdayJump{Sign: -1, Weekday: time.Monday}, expr)
}

func TestParseMalformedSignedExpressions(t *testing.T) {
	for _, in := range []string{"+", "~", "+3x", "+d", "~w", "+3", "+foo", "~-1d"} {
		_, err := Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrParse), in)
	}
}

func TestParseAbsolutePaths(t *testing.T) {
	expr, err := Parse("/2025-11-16/5/2")
	require.NoError(t, err)
	assert.Equal(t, AbsolutePath{Segments: []string{"2025-11-16", "5", "2"}}, expr)

	// A bare slash is an absolute path with no head; the resolver rejects it.
	expr, err = Parse("/")
	require.NoError(t, err)
	assert.Empty(t, expr.(AbsolutePath).Segments)

	// Trailing and doubled separators are harmless.
	expr, err = Parse("/groceries//3/")
	require.NoError(t, err)
	assert.Equal(t, AbsolutePath{Segments: []string{"groceries", "3"}}, expr)
}

func TestParsePathWithoutLeadingSlash(t *testing.T) {
	expr, err := Parse("2025-11-16/5")
	require.NoError(t, err)
	assert.Equal(t, AbsolutePath{Segments: []string{"2025-11-16", "5"}}, expr)
}

func TestParseDotDotChains(t *testing.T) {
	expr, err := Parse("..")
	require.NoError(t, err)
	assert.Equal(t, DotDotChain{Count: 1}, expr)

	expr, err = Parse("../")
	require.NoError(t, err)
	assert.Equal(t, DotDotChain{Count: 1}, expr)

	expr, err = Parse("../../..")
	require.NoError(t, err)
	assert.Equal(t, DotDotChain{Count: 3}, expr)

	expr, err = Parse("../../5")
	require.NoError(t, err)
	assert.Equal(t, DotDotChain{Count: 2, Tail: []string{"5"}}, expr)

	_, err = Parse("../5/..")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestParseNumericLiterals(t *testing.T) {
	expr, err := Parse("7")
	require.NoError(t, err)
	assert.Equal(t, NumericLiteral{Value: 7}, expr)

	for _, in := range []string{"0", "-3"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestParseAliasOrIDFallback(t *testing.T) {
	for _, in := range []string{"groceries", "bace-x7q", "2025-11-16", "1f1e9a3a-8a50-4e53-9f9b-6e42b0f1d001"} {
		expr, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, AliasOrID{Text: in}, expr, in)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := Parse(in)
		require.Error(t, err, "%q", in)
		assert.True(t, errors.Is(err, ErrParse))
	}
}
