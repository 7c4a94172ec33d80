package locator

import (
	"strconv"
	"strings"

	"github.com/torvane/daybook/placement"
)

// periodKeywords maps the bare period keywords accepted in range position.
// "today" is deliberately absent: it stays a single-date locator even inside
// a range expression.
var periodKeywords = map[string]PeriodName{
	"this-week":  PeriodThisWeek,
	"tw":         PeriodThisWeek,
	"next-week":  PeriodNextWeek,
	"this-month": PeriodThisMonth,
	"next-month": PeriodNextMonth,
}

// ParseRange turns raw range text into a range expression. "A..B" is
// recognized only when both sides of the final path segment are terminal
// (integers or calendar days); anything else falls back to a single locator,
// which keeps dotdot chains parseable in range position.
func ParseRange(text string) (RangeExpr, error) {
	trimmed := strings.TrimSpace(text)

	if name, ok := periodKeywords[strings.ToLower(trimmed)]; ok {
		return Period{Name: name}, nil
	}

	if r, ok := splitTerminalRange(trimmed); ok {
		return r, nil
	}

	expr, err := Parse(trimmed)
	if err != nil {
		return nil, err
	}
	return Single{Expr: expr}, nil
}

// splitTerminalRange tries to read the final path segment as "from..to".
// Numeric endpoints keep the preceding path segments as a shared prefix so
// "2025-11-16/5..3" spans subsections of one parent.
func splitTerminalRange(text string) (RangeExpr, bool) {
	segments := strings.Split(text, "/")
	last := segments[len(segments)-1]

	from, to, ok := strings.Cut(last, "..")
	if !ok || from == "" || to == "" {
		return nil, false
	}

	fromN, errFrom := strconv.Atoi(from)
	toN, errTo := strconv.Atoi(to)
	if errFrom == nil && errTo == nil {
		if fromN <= 0 || toN <= 0 {
			return nil, false
		}
		var prefix []string
		for _, seg := range segments[:len(segments)-1] {
			if seg != "" {
				prefix = append(prefix, seg)
			}
		}
		return NumericRange{Prefix: prefix, From: fromN, To: toN}, true
	}

	if len(segments) > 1 {
		// Only numeric spans may carry a path prefix.
		return nil, false
	}

	if placement.IsDayString(from) && placement.IsDayString(to) {
		fromDay, _ := placement.ParseDay(from)
		toDay, _ := placement.ParseDay(to)
		return DateRange{From: fromDay, To: toDay}, true
	}

	fromExpr, okFrom := parseTerminal(from)
	toExpr, okTo := parseTerminal(to)
	if okFrom && okTo {
		return LocatorRange{From: fromExpr, To: toExpr}, true
	}

	return nil, false
}

// parseTerminal parses a range side as a terminal locator: anything but a
// path or a dotdot chain.
func parseTerminal(text string) (Expr, bool) {
	expr, err := Parse(text)
	if err != nil {
		return nil, false
	}
	switch expr.(type) {
	case AbsolutePath, DotDotChain:
		return nil, false
	}
	return expr, true
}
