// Package locator parses the human-typed expressions that address the
// daybook store: relative dates, day/week offsets, weekday jumps, absolute
// paths, dotdot chains, numeric subsection literals, and alias or id tokens,
// plus the range forms built from them. Parsing is pure: no I/O and no wall
// clock; relative expressions are resolved later against an injected
// reference day.
package locator

import (
	"time"

	"github.com/torvane/daybook/placement"
)

// Expr is the locator expression union. Exactly one concrete type below
// implements it per grammar production.
type Expr interface {
	isExpr()
}

// RelativeDate is one of the keywords today/tomorrow/yesterday, carried as a
// day delta from the resolver's reference day.
type RelativeDate struct {
	Days int
}

// Unit is the offset unit: days or weeks.
type Unit uint8

const (
	// UnitDay steps in single days.
	UnitDay Unit = iota
	// UnitWeek steps in 7-day weeks.
	UnitWeek
)

// Offset is a signed day/week offset, spelled (+|~)<integer><d|w>.
// Sign is +1 for forward (+) and -1 for backward (~).
type Offset struct {
	Sign   int
	Amount int
	Unit   Unit
}

// Days returns the signed day delta of the offset.
func (o Offset) Days() int {
	days := o.Amount
	if o.Unit == UnitWeek {
		days *= 7
	}
	return o.Sign * days
}

// WeekdayJump targets the nearest matching weekday strictly in the given
// direction, spelled (+|~)<mon..sun>. Sign is +1 forward, -1 backward.
type WeekdayJump struct {
	Sign    int
	Weekday time.Weekday
}

// AbsolutePath is a slash-separated path. The head segment must resolve to a
// date, item id, or alias; the remaining segments are numeric subsections.
type AbsolutePath struct {
	Segments []string
}

// DotDotChain ascends Count levels from the current location, then descends
// through the numeric Tail segments.
type DotDotChain struct {
	Count int
	Tail  []string
}

// NumericLiteral is a bare positive integer: a subsection index appended to
// the current location.
type NumericLiteral struct {
	Value int
}

// AliasOrID is any token not matched by the rest of the grammar; the
// resolver decides whether it is a date literal, an item id, or an alias.
type AliasOrID struct {
	Text string
}

func (RelativeDate) isExpr()   {}
func (Offset) isExpr()         {}
func (WeekdayJump) isExpr()    {}
func (AbsolutePath) isExpr()   {}
func (DotDotChain) isExpr()    {}
func (NumericLiteral) isExpr() {}
func (AliasOrID) isExpr()      {}

// RangeExpr is the range expression union.
type RangeExpr interface {
	isRange()
}

// Single wraps a plain locator used in range position.
type Single struct {
	Expr Expr
}

// NumericRange spans sibling subsections From..To. Prefix carries any path
// segments written before the ranged final segment ("2025-11-16/5..3" has
// prefix ["2025-11-16"]) so both endpoints resolve under the same parent.
type NumericRange struct {
	Prefix []string
	From   int
	To     int
}

// DateRange spans whole calendar days From..To.
type DateRange struct {
	From placement.CalendarDay
	To   placement.CalendarDay
}

// PeriodName names a period keyword.
type PeriodName string

const (
	PeriodThisWeek  PeriodName = "this-week"
	PeriodNextWeek  PeriodName = "next-week"
	PeriodThisMonth PeriodName = "this-month"
	PeriodNextMonth PeriodName = "next-month"
)

// Period is a bare period keyword; the range resolver expands it to a
// DateRange around the reference day.
type Period struct {
	Name PeriodName
}

// LocatorRange is an explicit A..B whose sides are terminal locators other
// than a matched numeric or date pair (relative dates, offsets, jumps,
// aliases). Both sides are resolved through the path resolver and validated
// against each other.
type LocatorRange struct {
	From Expr
	To   Expr
}

func (Single) isRange()       {}
func (NumericRange) isRange() {}
func (DateRange) isRange()    {}
func (Period) isRange()       {}
func (LocatorRange) isRange() {}
