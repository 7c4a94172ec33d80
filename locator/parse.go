package locator

import (
	"strconv"
	"strings"
	"time"

	"github.com/torvane/daybook/errors"
)

// ErrParse is the sentinel wrapped by every grammar failure.
var ErrParse = errors.New("invalid locator expression")

// relativeDateKeywords maps the relative date keywords to day deltas from
// the reference day. Expansion happens at resolve time, never against the
// wall clock.
var relativeDateKeywords = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
}

// weekdayNames maps the three-letter weekday tokens of jump expressions.
var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Parse turns raw locator text into an expression. It is total over
// non-empty well-formed input: tokens not claimed by the grammar become
// AliasOrID for the resolver to interpret.
func Parse(text string) (Expr, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(ErrParse, "empty expression")
	}

	if strings.HasPrefix(text, "/") {
		return AbsolutePath{Segments: splitSegments(text[1:])}, nil
	}

	segments := splitSegments(text)
	if len(segments) > 0 && segments[0] == ".." {
		return parseDotDot(segments)
	}
	if len(segments) > 1 {
		// Multi-segment input without a leading slash reads as a path too;
		// the head rules are enforced at resolve time.
		return AbsolutePath{Segments: segments}, nil
	}

	return parseToken(text)
}

// parseDotDot consumes the leading run of ".." segments and keeps the rest
// as the descent tail.
func parseDotDot(segments []string) (Expr, error) {
	count := 0
	for count < len(segments) && segments[count] == ".." {
		count++
	}
	tail := segments[count:]
	if len(tail) == 0 {
		tail = nil
	}
	for _, seg := range tail {
		if seg == ".." {
			return nil, errors.Wrapf(ErrParse, "%q: '..' segments must lead the expression", strings.Join(segments, "/"))
		}
	}
	return DotDotChain{Count: count, Tail: tail}, nil
}

// parseToken classifies a single path-free token.
func parseToken(token string) (Expr, error) {
	if days, ok := relativeDateKeywords[strings.ToLower(token)]; ok {
		return RelativeDate{Days: days}, nil
	}

	if strings.HasPrefix(token, "+") || strings.HasPrefix(token, "~") {
		return parseSigned(token)
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n <= 0 {
			return nil, errors.Wrapf(ErrParse, "subsection index %q must be positive", token)
		}
		return NumericLiteral{Value: n}, nil
	}

	return AliasOrID{Text: token}, nil
}

// parseSigned handles the (+|~)<integer><d|w> and (+|~)<weekday> forms.
func parseSigned(token string) (Expr, error) {
	sign := 1
	if token[0] == '~' {
		sign = -1
	}
	body := token[1:]
	if body == "" {
		return nil, errors.Wrapf(ErrParse, "%q: missing offset or weekday", token)
	}

	if wd, ok := weekdayNames[strings.ToLower(body)]; ok {
		return WeekdayJump{Sign: sign, Weekday: wd}, nil
	}

	unit := UnitDay
	switch body[len(body)-1] {
	case 'd':
		unit = UnitDay
	case 'w':
		unit = UnitWeek
	default:
		return nil, errors.Wrapf(ErrParse, "%q: offset unit must be 'd' or 'w'", token)
	}

	amount, err := strconv.Atoi(body[:len(body)-1])
	if err != nil || amount < 0 {
		return nil, errors.Wrapf(ErrParse, "%q: offset amount must be a non-negative integer", token)
	}
	return Offset{Sign: sign, Amount: amount, Unit: unit}, nil
}

// splitSegments splits on '/' and drops empty segments so trailing slashes
// and doubled separators are harmless.
func splitSegments(text string) []string {
	var segments []string
	for _, seg := range strings.Split(text, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
