package rank

import (
	"sort"
	"strings"

	"github.com/torvane/daybook/errors"
)

// Compare orders two ranks. The key encoding guarantees byte order equals
// numeric order, so this is a strict total order over all valid ranks.
func Compare(a, b Rank) int {
	return strings.Compare(string(a), string(b))
}

// Head returns a rank ordered before every rank in existing, or the middle
// sentinel when existing is empty.
func Head(existing []Rank) (Rank, error) {
	if len(existing) == 0 {
		return Middle, nil
	}
	min := existing[0]
	for _, r := range existing[1:] {
		if Compare(r, min) < 0 {
			min = r
		}
	}
	return Prev(min)
}

// Tail returns a rank ordered after every rank in existing, or the middle
// sentinel when existing is empty.
func Tail(existing []Rank) (Rank, error) {
	if len(existing) == 0 {
		return Middle, nil
	}
	max := existing[0]
	for _, r := range existing[1:] {
		if Compare(r, max) > 0 {
			max = r
		}
	}
	return Next(max)
}

// Next returns the rank one integer step after r. Fails with no_headroom
// when r's integer part is already the absolute maximum.
func Next(r Rank) (Rank, error) {
	intPart, _, err := integerPart(r)
	if err != nil {
		return "", err
	}
	inc, ok := incrementInteger(intPart)
	if !ok {
		return "", errors.Wrapf(errors.ErrNoHeadroom, "after %s", r)
	}
	return Rank(inc), nil
}

// Prev returns the rank one integer step before r. Fails with no_headroom
// when r's integer part is already the absolute minimum.
func Prev(r Rank) (Rank, error) {
	intPart, _, err := integerPart(r)
	if err != nil {
		return "", err
	}
	dec, ok := decrementInteger(intPart)
	if !ok {
		return "", errors.Wrapf(errors.ErrNoHeadroom, "before %s", r)
	}
	return Rank(dec), nil
}

// Between returns a rank strictly between a and b. The sides may arrive in
// either order; equal sides fail with duplicate_ranks. Density guarantee:
// a result exists for any two distinct valid ranks.
func Between(a, b Rank) (Rank, error) {
	switch Compare(a, b) {
	case 0:
		return "", errors.Wrapf(errors.ErrDuplicateRanks, "between %s and %s", a, b)
	case 1:
		a, b = b, a
	}

	intA, fracA, err := integerPart(a)
	if err != nil {
		return "", err
	}
	intB, fracB, err := integerPart(b)
	if err != nil {
		return "", err
	}

	if intA == intB {
		return Rank(intA + midpoint(fracA, fracB, true)), nil
	}
	if inc, ok := incrementInteger(intA); ok && inc < string(b) {
		return Rank(inc), nil
	}
	return Rank(intA + midpoint(fracA, "", false)), nil
}

// Before returns a rank placing a new sibling immediately before target
// within existing. Fails with target_not_found when target is absent.
func Before(target Rank, existing []Rank) (Rank, error) {
	sorted, idx, err := locate(target, existing)
	if err != nil {
		return "", err
	}
	if idx == 0 {
		return Prev(target)
	}
	return Between(sorted[idx-1], target)
}

// After returns a rank placing a new sibling immediately after target
// within existing. Fails with target_not_found when target is absent.
func After(target Rank, existing []Rank) (Rank, error) {
	sorted, idx, err := locate(target, existing)
	if err != nil {
		return "", err
	}
	if idx == len(sorted)-1 {
		return Next(target)
	}
	return Between(target, sorted[idx+1])
}

// locate sorts a copy of existing and finds target in it.
func locate(target Rank, existing []Rank) ([]Rank, int, error) {
	sorted := make([]Rank, len(existing))
	copy(sorted, existing)
	sort.Slice(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })

	idx := sort.Search(len(sorted), func(i int) bool { return Compare(sorted[i], target) >= 0 })
	if idx == len(sorted) || Compare(sorted[idx], target) != 0 {
		return nil, 0, errors.Wrapf(errors.ErrTargetNotFound, "rank %s", target)
	}
	return sorted, idx, nil
}

// EquallySpaced generates n strictly increasing ranks for bulk loads,
// starting at the middle sentinel and stepping one integer apart. n <= 0
// yields an empty slice.
func EquallySpaced(n int) ([]Rank, error) {
	if n <= 0 {
		return nil, nil
	}
	ranks := make([]Rank, n)
	ranks[0] = Middle
	for i := 1; i < n; i++ {
		next, err := Next(ranks[i-1])
		if err != nil {
			return nil, err
		}
		ranks[i] = next
	}
	return ranks, nil
}
