package usecase

import (
	"context"
	"fmt"

	"integra-recife/internal/event"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

// CalendarDays returns the days of the window that have at least one event,
// with the number of events on each. It drives calendar grid highlighting.
func (uc *implUseCase) CalendarDays(ctx context.Context, input event.CalendarDaysInput) (event.CalendarDaysOutput, error) {
	w, err := uc.resolveWindow(input.WindowInput)
	if err != nil {
		return event.CalendarDaysOutput{}, err
	}
	status, err := statusFilter(input.Status)
	if err != nil {
		return event.CalendarDaysOutput{}, err
	}

	events, err := uc.loadEvents(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CalendarDays loadEvents: %v", err)
		return event.CalendarDaysOutput{}, err
	}

	idx := uc.indexFor(ctx, events)
	days := make([]event.DaySummary, 0)
	if status == "" {
		for _, d := range idx.DaysIn(w) {
			days = append(days, event.DaySummary{Day: d, Count: len(idx.EventsOn(d))})
		}
	} else {
		views := uc.viewsWhere(events, idx, uc.parser.Now(), status, func(n datemath.NormalizedDate) bool {
			return w.ContainsDay(n.Day())
		})
		days = summarize(views)
	}

	return event.CalendarDaysOutput{Window: w, Days: days}, nil
}

// EventsOnDay returns the events of a single YYYY-MM-DD day.
func (uc *implUseCase) EventsOnDay(ctx context.Context, input event.DayEventsInput) (event.DayEventsOutput, error) {
	day, err := datemath.ParseDay(input.Day)
	if err != nil {
		return event.DayEventsOutput{}, fmt.Errorf("%w: %v", event.ErrInvalidDay, err)
	}
	status, err := statusFilter(input.Status)
	if err != nil {
		return event.DayEventsOutput{}, err
	}

	events, err := uc.loadEvents(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.EventsOnDay loadEvents: %v", err)
		return event.DayEventsOutput{}, err
	}

	idx := uc.indexFor(ctx, events)
	if !idx.HasAny(day) {
		return event.DayEventsOutput{Day: day, Events: []event.EventView{}}, nil
	}

	onDay := make(map[int64]bool)
	for _, id := range idx.EventsOn(day) {
		onDay[id] = true
	}
	var filtered []model.Event
	for _, ev := range events {
		if onDay[ev.ID] {
			filtered = append(filtered, ev)
		}
	}

	views := uc.viewsWhere(filtered, idx, uc.parser.Now(), status, func(datemath.NormalizedDate) bool { return true })
	return event.DayEventsOutput{Day: day, Events: views}, nil
}

// summarize counts views per day; views are already in date order.
func summarize(views []event.EventView) []event.DaySummary {
	days := make([]event.DaySummary, 0)
	for _, v := range views {
		d := v.Date.Day()
		if n := len(days); n > 0 && days[n-1].Day == d {
			days[n-1].Count++
			continue
		}
		days = append(days, event.DaySummary{Day: d, Count: 1})
	}
	return days
}
