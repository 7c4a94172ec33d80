package placement

import (
	"time"

	"github.com/torvane/daybook/errors"
)

// dayLayout is the canonical textual form of a calendar day.
const dayLayout = "2006-01-02"

// CalendarDay is a timezone-agnostic calendar date. Two CalendarDays are
// comparable regardless of where they were observed; all arithmetic is done
// on UTC midnights so DST transitions never shift a day.
type CalendarDay struct {
	year  int
	month time.Month
	day   int
}

// NewDay constructs a CalendarDay from its components, normalizing
// out-of-range values the way time.Date does.
func NewDay(year int, month time.Month, day int) CalendarDay {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CalendarDay{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DayOf extracts the calendar day of t in t's own location.
func DayOf(t time.Time) CalendarDay {
	return CalendarDay{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay parses the canonical "2006-01-02" form.
func ParseDay(s string) (CalendarDay, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return CalendarDay{}, errors.Wrapf(err, "parse calendar day %q", s)
	}
	return DayOf(t), nil
}

// IsDayString reports whether s is a well-formed calendar day literal.
func IsDayString(s string) bool {
	_, err := time.Parse(dayLayout, s)
	return err == nil
}

func (d CalendarDay) String() string {
	return d.time().Format(dayLayout)
}

// Year returns the calendar year.
func (d CalendarDay) Year() int { return d.year }

// Month returns the calendar month.
func (d CalendarDay) Month() time.Month { return d.month }

// Day returns the day of month.
func (d CalendarDay) Day() int { return d.day }

func (d CalendarDay) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days after d (n may be negative).
func (d CalendarDay) AddDays(n int) CalendarDay {
	return DayOf(d.time().AddDate(0, 0, n))
}

// Weekday returns the day of week.
func (d CalendarDay) Weekday() time.Weekday {
	return d.time().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDay) Before(other CalendarDay) bool {
	return d.time().Before(other.time())
}

// After reports whether d is strictly later than other.
func (d CalendarDay) After(other CalendarDay) bool {
	return d.time().After(other.time())
}

// Equal reports whether d and other are the same calendar day.
func (d CalendarDay) Equal(other CalendarDay) bool {
	return d == other
}

// DaysBetween returns other minus d in whole days.
func (d CalendarDay) DaysBetween(other CalendarDay) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

// StartOfWeek returns the Monday of the week containing d.
func (d CalendarDay) StartOfWeek() CalendarDay {
	wd := d.Weekday()
	// time.Weekday counts Sunday as 0; weeks here run Monday..Sunday.
	offset := int(wd - time.Monday)
	if wd == time.Sunday {
		offset = 6
	}
	return d.AddDays(-offset)
}

// StartOfMonth returns the first day of d's month.
func (d CalendarDay) StartOfMonth() CalendarDay {
	return NewDay(d.year, d.month, 1)
}

// EndOfMonth returns the last day of d's month.
func (d CalendarDay) EndOfMonth() CalendarDay {
	return NewDay(d.year, d.month+1, 1).AddDays(-1)
}
