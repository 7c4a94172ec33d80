// Package placement defines the address value types of the daybook store: a
// calendar day and the placement (head + numeric section chain) that locates
// every item. Placements are immutable values; every mutator returns a new
// placement.
package placement

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/torvane/daybook/errors"
)

// ItemID identifies an item. Defined here rather than in the item package
// because placements address items by id and the item package builds on
// placement.
type ItemID = uuid.UUID

// HeadKind discriminates the placement head union.
type HeadKind uint8

const (
	// HeadDate anchors the placement to a calendar day.
	HeadDate HeadKind = iota
	// HeadItem anchors the placement under another item.
	HeadItem
	// HeadPermanent anchors the placement in the dateless permanent scope.
	HeadPermanent
)

// permanentLiteral is the canonical textual head of permanent placements.
const permanentLiteral = "permanent"

// Placement is the resolved address of an item or scope: a head (date, item,
// or permanent) plus an ordered chain of positive section indexes. Section
// entries compare numerically, never lexically. An empty section chain means
// the head itself.
type Placement struct {
	kind    HeadKind
	day     CalendarDay
	item    ItemID
	section []int
}

// DatePlacement addresses a calendar day scope.
func DatePlacement(day CalendarDay) Placement {
	return Placement{kind: HeadDate, day: day}
}

// ItemPlacement addresses a scope under the given item. The item is not
// required to exist for construction; most operations that follow the head
// (ascent, listing) do require it.
func ItemPlacement(id ItemID) Placement {
	return Placement{kind: HeadItem, item: id}
}

// PermanentPlacement addresses the dateless permanent scope.
func PermanentPlacement() Placement {
	return Placement{kind: HeadPermanent}
}

// Kind returns the head discriminator.
func (p Placement) Kind() HeadKind { return p.kind }

// Day returns the date head. The second result is false for non-date heads.
func (p Placement) Day() (CalendarDay, bool) {
	return p.day, p.kind == HeadDate
}

// Item returns the item head. The second result is false for non-item heads.
func (p Placement) Item() (ItemID, bool) {
	return p.item, p.kind == HeadItem
}

// Section returns a copy of the section chain.
func (p Placement) Section() []int {
	if len(p.section) == 0 {
		return nil
	}
	out := make([]int, len(p.section))
	copy(out, p.section)
	return out
}

// AppendSection returns a new placement with n appended to the section
// chain. n must be positive; resolution only ever appends parsed positive
// literals.
func (p Placement) AppendSection(n int) Placement {
	section := make([]int, len(p.section)+1)
	copy(section, p.section)
	section[len(p.section)] = n
	p.section = section
	return p
}

// Parent returns the placement with the last section entry dropped. The
// second result is false when the section chain is empty: ascending past an
// item head requires loading the item's own stored placement, and date or
// permanent heads have no parent at all. Both cases are the caller's to
// distinguish via Kind.
func (p Placement) Parent() (Placement, bool) {
	if len(p.section) == 0 {
		return Placement{}, false
	}
	section := make([]int, len(p.section)-1)
	copy(section, p.section[:len(p.section)-1])
	p.section = section
	return p, true
}

// Equal reports whether two placements address the same location.
func (p Placement) Equal(other Placement) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case HeadDate:
		if !p.day.Equal(other.day) {
			return false
		}
	case HeadItem:
		if p.item != other.item {
			return false
		}
	}
	if len(p.section) != len(other.section) {
		return false
	}
	for i, n := range p.section {
		if other.section[i] != n {
			return false
		}
	}
	return true
}

// String renders the canonical form "head/seg/seg...": the head is an ISO
// date, a UUID, or the literal "permanent".
func (p Placement) String() string {
	var b strings.Builder
	switch p.kind {
	case HeadDate:
		b.WriteString(p.day.String())
	case HeadItem:
		b.WriteString(p.item.String())
	case HeadPermanent:
		b.WriteString(permanentLiteral)
	}
	for _, n := range p.section {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Parse reads the canonical form produced by String.
func Parse(s string) (Placement, error) {
	if s == "" {
		return Placement{}, errors.New("empty placement")
	}
	segments := strings.Split(s, "/")
	head := segments[0]

	var p Placement
	switch {
	case head == permanentLiteral:
		p = PermanentPlacement()
	case IsDayString(head):
		day, err := ParseDay(head)
		if err != nil {
			return Placement{}, err
		}
		p = DatePlacement(day)
	default:
		id, err := uuid.Parse(head)
		if err != nil {
			return Placement{}, errors.Newf("placement head %q is not a date, uuid, or %q", head, permanentLiteral)
		}
		p = ItemPlacement(id)
	}

	for _, seg := range segments[1:] {
		n, err := strconv.Atoi(seg)
		if err != nil || n <= 0 {
			return Placement{}, errors.Newf("placement section %q is not a positive integer", seg)
		}
		p = p.AppendSection(n)
	}
	return p, nil
}
