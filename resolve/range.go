package resolve

import (
	"context"

	"github.com/torvane/daybook/errors"
	"github.com/torvane/daybook/locator"
	"github.com/torvane/daybook/placement"
)

// ResolveRange parses and resolves raw range text in one step.
func (r *Resolver) ResolveRange(ctx context.Context, cwd placement.Placement, text string) (placement.DirectoryRange, error) {
	expr, err := locator.ParseRange(text)
	if err != nil {
		return placement.DirectoryRange{}, err
	}
	return r.ResolveRangeExpr(ctx, cwd, expr)
}

// ResolveRangeExpr resolves a parsed range expression against the current
// location. Period keywords expand to day spans around the reference day
// before validation.
func (r *Resolver) ResolveRangeExpr(ctx context.Context, cwd placement.Placement, expr locator.RangeExpr) (placement.DirectoryRange, error) {
	switch e := expr.(type) {
	case locator.Period:
		from, to := r.expandPeriod(e.Name)
		return placement.DayRange(from, to), nil

	case locator.DateRange:
		if e.From.After(e.To) {
			return placement.DirectoryRange{}, errors.Wrapf(errors.ErrInvalidRangeOrder,
				"%s..%s", e.From, e.To)
		}
		return placement.DayRange(e.From, e.To), nil

	case locator.NumericRange:
		return r.resolveNumericRange(ctx, cwd, e)

	case locator.LocatorRange:
		return r.resolveLocatorRange(ctx, cwd, e)

	case locator.Single:
		p, err := r.ResolvePath(ctx, cwd, e.Expr)
		if err != nil {
			return placement.DirectoryRange{}, err
		}
		return placement.SingleRange(p), nil

	default:
		return placement.DirectoryRange{}, errors.AssertionFailedf("unhandled range expression %T", expr)
	}
}

// expandPeriod maps a period keyword onto its day span. Weeks run
// Monday..Sunday; next-month rolls the year forward at December.
func (r *Resolver) expandPeriod(name locator.PeriodName) (placement.CalendarDay, placement.CalendarDay) {
	switch name {
	case locator.PeriodThisWeek:
		start := r.today.StartOfWeek()
		return start, start.AddDays(6)
	case locator.PeriodNextWeek:
		start := r.today.StartOfWeek().AddDays(7)
		return start, start.AddDays(6)
	case locator.PeriodThisMonth:
		return r.today.StartOfMonth(), r.today.EndOfMonth()
	default: // next-month
		start := r.today.EndOfMonth().AddDays(1)
		return start, start.EndOfMonth()
	}
}

// resolveNumericRange resolves a subsection span. The parsed prefix (if any)
// names the shared parent; without one the span sits under cwd.
func (r *Resolver) resolveNumericRange(ctx context.Context, cwd placement.Placement, e locator.NumericRange) (placement.DirectoryRange, error) {
	parent := cwd
	if len(e.Prefix) > 0 {
		head := e.Prefix[0]
		rest := e.Prefix[1:]
		if isNumeric(head) {
			// Purely numeric prefixes descend from cwd.
			rest = e.Prefix
		} else {
			base, err := r.resolveHead(ctx, head)
			if err != nil {
				return placement.DirectoryRange{}, err
			}
			parent = base
		}
		var err error
		parent, err = r.appendSegments(parent, rest)
		if err != nil {
			return placement.DirectoryRange{}, err
		}
	}
	if e.From > e.To {
		return placement.DirectoryRange{}, errors.Wrapf(errors.ErrInvalidRangeOrder,
			"%d..%d", e.From, e.To)
	}
	return placement.SectionRange(parent, e.From, e.To), nil
}

// resolveLocatorRange resolves both endpoints through the path resolver and
// validates that they form a listing scope: a day span, or a subsection span
// under one shared parent.
func (r *Resolver) resolveLocatorRange(ctx context.Context, cwd placement.Placement, e locator.LocatorRange) (placement.DirectoryRange, error) {
	from, err := r.ResolvePath(ctx, cwd, e.From)
	if err != nil {
		return placement.DirectoryRange{}, err
	}
	to, err := r.ResolvePath(ctx, cwd, e.To)
	if err != nil {
		return placement.DirectoryRange{}, err
	}

	if from.Equal(to) {
		return placement.SingleRange(from), nil
	}

	// Two plain date heads span whole days.
	fromDay, fromIsDay := from.Day()
	toDay, toIsDay := to.Day()
	if fromIsDay && toIsDay && len(from.Section()) == 0 && len(to.Section()) == 0 {
		if fromDay.After(toDay) {
			return placement.DirectoryRange{}, errors.Wrapf(errors.ErrInvalidRangeOrder,
				"%s..%s", fromDay, toDay)
		}
		return placement.DayRange(fromDay, toDay), nil
	}

	// Otherwise both endpoints must be siblings under the same parent.
	fromParent, okFrom := from.Parent()
	toParent, okTo := to.Parent()
	if !okFrom || !okTo || !fromParent.Equal(toParent) {
		return placement.DirectoryRange{}, errors.Wrapf(errors.ErrRangeDifferentParents,
			"%s and %s", from, to)
	}
	fromSection := from.Section()
	toSection := to.Section()
	fromN := fromSection[len(fromSection)-1]
	toN := toSection[len(toSection)-1]
	if fromN > toN {
		return placement.DirectoryRange{}, errors.Wrapf(errors.ErrInvalidRangeOrder,
			"%d..%d", fromN, toN)
	}
	return placement.SectionRange(fromParent, fromN, toN), nil
}
