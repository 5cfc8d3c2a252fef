package datemath

import (
	"fmt"
	"time"
)

// DayLayout is the wire format of a Day.
const DayLayout = "2006-01-02"

// Day is a calendar date without time of day. It is comparable and used as a map key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a strict YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }
func (d Day) IsZero() bool      { return d == Day{} }

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText encodes d as YYYY-MM-DD so it can be used as a JSON value or map key.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// NormalizedDate is the parsed form of an event date.
// Time holds the wall clock in the parser location; it is midnight when HasTime is false.
type NormalizedDate struct {
	Time    time.Time
	HasTime bool
}

// Day returns the date part.
func (n NormalizedDate) Day() Day { return DayOf(n.Time) }

// Year returns the calendar year.
func (n NormalizedDate) Year() int { return n.Time.Year() }

// MonthIndex returns the month as 0 (January) to 11 (December).
func (n NormalizedDate) MonthIndex() int { return int(n.Time.Month()) - 1 }

// DayOfMonth returns the day of the month.
func (n NormalizedDate) DayOfMonth() int { return n.Time.Day() }

// Before reports whether n is strictly before t. Dates without time of day order as 00:00.
func (n NormalizedDate) Before(t time.Time) bool { return n.Time.Before(t) }

type inputKind int

const (
	inputString inputKind = iota
	inputTime
)

// Input is a raw event date: either a string in one of the supported encodings
// or an already-parsed time.Time.
type Input struct {
	kind inputKind
	raw  string
	t    time.Time
}

// FromString wraps a raw date string read from the store.
func FromString(s string) Input {
	return Input{kind: inputString, raw: s}
}

// FromTime wraps a native time value; Parse returns it unchanged.
func FromTime(t time.Time) Input {
	return Input{kind: inputTime, t: t}
}

// IsTime reports whether the input carries a native time value.
func (i Input) IsTime() bool { return i.kind == inputTime }

func (i Input) String() string {
	if i.kind == inputTime {
		return i.t.Format(time.RFC3339)
	}
	return i.raw
}
