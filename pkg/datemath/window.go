package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WindowKind names a calendar window.
type WindowKind string

const (
	WindowToday   WindowKind = "today"
	WindowWeek    WindowKind = "week"
	WindowWeekend WindowKind = "weekend"
	WindowMonth   WindowKind = "month"
	WindowCustom  WindowKind = "custom"
)

var (
	ErrUnknownWindow    = errors.New("unknown calendar window")
	ErrUnknownWeekStart = errors.New("week start must be sunday or monday")
)

var windowAliases = map[string]WindowKind{
	"today":         WindowToday,
	"hoje":          WindowToday,
	"week":          WindowWeek,
	"semana":        WindowWeek,
	"weekend":       WindowWeekend,
	"fim-de-semana": WindowWeekend,
	"month":         WindowMonth,
	"mes":           WindowMonth,
	"mês":           WindowMonth,
	"custom":        WindowCustom,
}

// ParseWindowKind resolves a window name, English or Portuguese.
func ParseWindowKind(s string) (WindowKind, error) {
	k, ok := windowAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
	}
	return k, nil
}

// ParseWeekStart accepts "sunday" or "monday". Empty means sunday.
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "domingo":
		return time.Sunday, nil
	case "monday", "segunda":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekStart, s)
}

// Window is a closed interval [From, To].
// Only the weekend window compares instants; the others compare date parts.
type Window struct {
	Kind WindowKind
	From time.Time
	To   time.Time

	timeBounded bool
}

// WindowFor computes the window of the given kind around today.
// today is read as a wall clock; its location is kept in the bounds.
func WindowFor(kind WindowKind, today time.Time, weekStart time.Weekday) (Window, error) {
	loc := today.Location()
	day := DayOf(today)

	switch kind {
	case WindowToday:
		return dayWindow(kind, day, day, loc), nil

	case WindowWeek:
		offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
		from := day.AddDays(-offset)
		return dayWindow(kind, from, from.AddDays(6), loc), nil

	case WindowWeekend:
		wd := int(day.Weekday())
		daysUntilSaturday := 0
		if time.Weekday(wd) != time.Saturday {
			daysUntilSaturday = (6 - wd + 7) % 7
		}
		saturday := day.AddDays(daysUntilSaturday)
		sunday := saturday.AddDays(1)
		return Window{
			Kind:        kind,
			From:        saturday.Time(loc),
			To:          endOfDay(sunday, loc),
			timeBounded: true,
		}, nil

	case WindowMonth:
		first := Day{Year: day.Year, Month: day.Month, Day: 1}
		last := Day{Year: day.Year, Month: day.Month, Day: daysIn(day.Year, day.Month)}
		return dayWindow(kind, first, last, loc), nil

	case WindowCustom:
		return Window{}, fmt.Errorf("%w: custom windows need explicit bounds", ErrUnknownWindow)
	}
	return Window{}, fmt.Errorf("%w: %q", ErrUnknownWindow, kind)
}

// Custom builds a window over [from, to]. Inverted bounds are swapped.
func Custom(from, to Day, loc *time.Location) Window {
	if to.Before(from) {
		from, to = to, from
	}
	return dayWindow(WindowCustom, from, to, loc)
}

func dayWindow(kind WindowKind, from, to Day, loc *time.Location) Window {
	return Window{Kind: kind, From: from.Time(loc), To: endOfDay(to, loc)}
}

func endOfDay(d Day, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// FromDay returns the first day of the window.
func (w Window) FromDay() Day { return DayOf(w.From) }

// ToDay returns the last day of the window.
func (w Window) ToDay() Day { return DayOf(w.To) }

// Contains reports whether n falls inside the window.
func (w Window) Contains(n NormalizedDate) bool {
	if w.timeBounded {
		t := n.Time.In(w.From.Location())
		return !t.Before(w.From) && !t.After(w.To)
	}
	return w.ContainsDay(DayOf(n.Time.In(w.From.Location())))
}

// ContainsDay compares date parts only.
func (w Window) ContainsDay(d Day) bool {
	return !d.Before(w.FromDay()) && !d.After(w.ToDay())
}

// Days lists every day of the window in order.
func (w Window) Days() []Day {
	from, to := w.FromDay(), w.ToDay()
	var days []Day
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
