package placement

import "strconv"

// RangeKind discriminates the DirectoryRange union.
type RangeKind uint8

const (
	// RangeSingle addresses the children of one placement.
	RangeSingle RangeKind = iota
	// RangeDays spans whole calendar days From..To inclusive.
	RangeDays
	// RangeSections spans sibling subsections FromSection..ToSection of one
	// parent placement, inclusive.
	RangeSections
)

// DirectoryRange is a resolved, validated listing scope: either one
// placement, an inclusive span of calendar days, or an inclusive span of
// sibling subsections under a common parent.
type DirectoryRange struct {
	kind RangeKind

	single Placement

	fromDay CalendarDay
	toDay   CalendarDay

	parent      Placement
	fromSection int
	toSection   int
}

// SingleRange scopes a listing to the children of p.
func SingleRange(p Placement) DirectoryRange {
	return DirectoryRange{kind: RangeSingle, single: p}
}

// DayRange scopes a listing to the days from..to inclusive. Callers validate
// the order before constructing.
func DayRange(from, to CalendarDay) DirectoryRange {
	return DirectoryRange{kind: RangeDays, fromDay: from, toDay: to}
}

// SectionRange scopes a listing to subsections from..to of parent.
func SectionRange(parent Placement, from, to int) DirectoryRange {
	return DirectoryRange{kind: RangeSections, parent: parent, fromSection: from, toSection: to}
}

// Kind returns the range discriminator.
func (r DirectoryRange) Kind() RangeKind { return r.kind }

// Single returns the single placement scope; valid for RangeSingle.
func (r DirectoryRange) Single() Placement { return r.single }

// Days returns the inclusive day span; valid for RangeDays.
func (r DirectoryRange) Days() (CalendarDay, CalendarDay) { return r.fromDay, r.toDay }

// Sections returns the parent and inclusive section span; valid for
// RangeSections.
func (r DirectoryRange) Sections() (Placement, int, int) {
	return r.parent, r.fromSection, r.toSection
}

// String renders a debug form of the range.
func (r DirectoryRange) String() string {
	switch r.kind {
	case RangeDays:
		return r.fromDay.String() + ".." + r.toDay.String()
	case RangeSections:
		return r.parent.String() + "/" + strconv.Itoa(r.fromSection) + ".." + strconv.Itoa(r.toSection)
	default:
		return r.single.String()
	}
}
