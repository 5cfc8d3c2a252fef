package calendar

import (
	"sort"
	"time"

	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

// Index maps calendar days to the ids of events happening on them.
// It is rebuilt from scratch whenever the event collection changes.
//
// Events whose date could not be parsed have no fixed day. They always sit
// on today and take the current time as their date, resolved on every read,
// so a cached Index never freezes them.
type Index struct {
	buckets   map[datemath.Day][]int64
	dates     map[int64]datemath.NormalizedDate
	floating  []int64
	isFloat   map[int64]bool
	positions map[int64]int
	now       func() time.Time
}

// Build parses each event date and groups ids by day, keeping input order inside a bucket.
func Build(events []model.Event, parser *datemath.Parser) *Index {
	idx := &Index{
		buckets:   make(map[datemath.Day][]int64),
		dates:     make(map[int64]datemath.NormalizedDate, len(events)),
		isFloat:   make(map[int64]bool),
		positions: make(map[int64]int, len(events)),
		now:       parser.Now,
	}
	for i, ev := range events {
		idx.positions[ev.ID] = i
		n, ok := parser.ParseChecked(datemath.FromString(ev.RawDate))
		if !ok {
			idx.floating = append(idx.floating, ev.ID)
			idx.isFloat[ev.ID] = true
			continue
		}
		d := n.Day()
		idx.buckets[d] = append(idx.buckets[d], ev.ID)
		idx.dates[ev.ID] = n
	}
	return idx
}

func (idx *Index) today() datemath.Day { return datemath.DayOf(idx.now()) }

// EventsOn returns the ids of events on day d, or nil.
func (idx *Index) EventsOn(d datemath.Day) []int64 {
	ids := idx.buckets[d]
	withFloating := len(idx.floating) > 0 && d == idx.today()
	if len(ids) == 0 && !withFloating {
		return nil
	}

	out := make([]int64, len(ids), len(ids)+len(idx.floating))
	copy(out, ids)
	if withFloating {
		out = append(out, idx.floating...)
		sort.SliceStable(out, func(i, j int) bool { return idx.positions[out[i]] < idx.positions[out[j]] })
	}
	return out
}

// HasAny reports whether at least one event falls on day d.
func (idx *Index) HasAny(d datemath.Day) bool {
	if len(idx.buckets[d]) > 0 {
		return true
	}
	return len(idx.floating) > 0 && d == idx.today()
}

// Days returns every day that has events, in ascending order.
func (idx *Index) Days() []datemath.Day {
	days := make([]datemath.Day, 0, len(idx.buckets)+1)
	for d := range idx.buckets {
		days = append(days, d)
	}
	if len(idx.floating) > 0 {
		if today := idx.today(); len(idx.buckets[today]) == 0 {
			days = append(days, today)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// DaysIn returns the days of w that have events, in ascending order.
func (idx *Index) DaysIn(w datemath.Window) []datemath.Day {
	var out []datemath.Day
	for _, d := range idx.Days() {
		if w.ContainsDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// Date returns the parsed date of an indexed event.
// Unparseable dates resolve to the current time.
func (idx *Index) Date(id int64) (datemath.NormalizedDate, bool) {
	return idx.DateAt(id, idx.now())
}

// DateAt is Date with unparseable dates resolved to now.
func (idx *Index) DateAt(id int64, now time.Time) (datemath.NormalizedDate, bool) {
	if idx.isFloat[id] {
		return datemath.NormalizedDate{Time: now, HasTime: true}, true
	}
	n, ok := idx.dates[id]
	return n, ok
}

// Unparseable reports whether the date of id could not be parsed.
func (idx *Index) Unparseable(id int64) bool { return idx.isFloat[id] }

// Len returns the number of indexed events.
func (idx *Index) Len() int { return len(idx.positions) }
