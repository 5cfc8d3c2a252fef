package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"integra-recife/internal/calendar"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

func fixture() []model.Event {
	return []model.Event{
		{ID: 1, RawDate: "2025-10-15T18:00:00"},
		{ID: 2, RawDate: "15 de Outubro, 2025"},
		{ID: 3, RawDate: "16/10/2025"},
		{ID: 4, RawDate: "18 de outubro de 2025"},
		{ID: 5, RawDate: "2025-10-18"},
		{ID: 6, RawDate: "2025-11-02T09:00:00"},
	}
}

func TestBuild(t *testing.T) {
	parser, _ := datemath.NewParser("America/Recife")
	idx := calendar.Build(fixture(), parser)

	d := func(y int, m time.Month, day int) datemath.Day { return datemath.Day{Year: y, Month: m, Day: day} }

	tests := []struct {
		name string
		day  datemath.Day
		want []int64
	}{
		{"Two events sharing a day", d(2025, 10, 15), []int64{1, 2}},
		{"Single event", d(2025, 10, 16), []int64{3}},
		{"Mixed encodings on the same day", d(2025, 10, 18), []int64{4, 5}},
		{"Next month", d(2025, 11, 2), []int64{6}},
		{"Empty day", d(2025, 10, 17), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.EventsOn(tt.day)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EventsOn(%v) = %v, want %v", tt.day, got, tt.want)
			}
			if idx.HasAny(tt.day) != (len(tt.want) > 0) {
				t.Errorf("HasAny(%v) = %v", tt.day, idx.HasAny(tt.day))
			}
		})
	}

	if idx.Len() != 6 {
		t.Errorf("Len() = %d, want 6", idx.Len())
	}

	wantDays := []datemath.Day{d(2025, 10, 15), d(2025, 10, 16), d(2025, 10, 18), d(2025, 11, 2)}
	if got := idx.Days(); !reflect.DeepEqual(got, wantDays) {
		t.Errorf("Days() = %v, want %v", got, wantDays)
	}

	w := datemath.Custom(d(2025, 10, 16), d(2025, 10, 31), parser.Location())
	if got := idx.DaysIn(w); !reflect.DeepEqual(got, []datemath.Day{d(2025, 10, 16), d(2025, 10, 18)}) {
		t.Errorf("DaysIn() = %v", got)
	}
}

func TestEventsOnReturnsCopy(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	idx := calendar.Build(fixture(), parser)
	day := datemath.Day{Year: 2025, Month: time.October, Day: 15}

	ids := idx.EventsOn(day)
	ids[0] = 99

	if got := idx.EventsOn(day); got[0] != 1 {
		t.Errorf("index mutated through returned slice: %v", got)
	}
}

func TestBuildUnparseableUsesNow(t *testing.T) {
	fixed := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)
	var reported int
	parser, _ := datemath.NewParser("UTC",
		datemath.WithClock(func() time.Time { return fixed }),
		datemath.WithReporter(datemath.ReporterFunc(func(string) { reported++ })),
	)

	idx := calendar.Build([]model.Event{{ID: 7, RawDate: "em breve"}}, parser)

	if !idx.HasAny(datemath.DayOf(fixed)) {
		t.Errorf("unparseable event should be indexed on today")
	}
	if reported != 1 {
		t.Errorf("reported = %d, want 1", reported)
	}
	n, ok := idx.Date(7)
	if !ok || !n.Time.Equal(fixed) {
		t.Errorf("Date(7) = %v, %v", n.Time, ok)
	}
}

func TestUnparseableFollowsClock(t *testing.T) {
	clock := time.Date(2025, 10, 20, 23, 59, 0, 0, time.UTC)
	parser, _ := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return clock }))

	idx := calendar.Build([]model.Event{
		{ID: 1, RawDate: "2025-10-21"},
		{ID: 2, RawDate: "a definir"},
		{ID: 3, RawDate: "2025-10-21T10:00:00"},
	}, parser)

	if !idx.Unparseable(2) || idx.Unparseable(1) {
		t.Fatalf("Unparseable flags wrong")
	}
	oct20 := datemath.Day{Year: 2025, Month: time.October, Day: 20}
	oct21 := datemath.Day{Year: 2025, Month: time.October, Day: 21}
	if !idx.HasAny(oct20) {
		t.Errorf("unparseable event should sit on Oct 20 before midnight")
	}

	clock = clock.Add(2 * time.Minute)

	if idx.HasAny(oct20) {
		t.Errorf("Oct 20 should be empty once the clock moves on")
	}
	if got := idx.EventsOn(oct21); !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("EventsOn(Oct 21) = %v, want input order [1 2 3]", got)
	}
	if got := idx.Days(); !reflect.DeepEqual(got, []datemath.Day{oct21}) {
		t.Errorf("Days() = %v, want [%v]", got, oct21)
	}
	n, ok := idx.Date(2)
	if !ok || !n.Time.Equal(clock) {
		t.Errorf("Date(2) = %v, %v; want %v", n.Time, ok, clock)
	}
	at := clock.Add(time.Hour)
	if n, _ := idx.DateAt(2, at); !n.Time.Equal(at) {
		t.Errorf("DateAt(2) = %v, want %v", n.Time, at)
	}
}
