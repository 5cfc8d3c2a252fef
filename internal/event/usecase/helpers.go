package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"integra-recife/internal/calendar"
	"integra-recife/internal/event"
	repo "integra-recife/internal/event/repository"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

// loadEvents reads the events matching the category filters from the store.
func (uc *implUseCase) loadEvents(ctx context.Context, f event.Filter) ([]model.Event, error) {
	cats, none := categoriesFor(f)
	if none {
		return nil, nil
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Categories: cats})
	if err != nil {
		return nil, errStore(err)
	}
	return events, nil
}

// errStore marks a repository failure as a store outage for the delivery layer.
func errStore(err error) error {
	return fmt.Errorf("%w: %w", event.ErrStoreUnavailable, err)
}

// viewsWhere builds views for the events whose date satisfies keep and whose
// resolved status matches status (when set), ordered by date then id.
func (uc *implUseCase) viewsWhere(
	events []model.Event,
	idx *calendar.Index,
	now time.Time,
	status model.EventStatus,
	keep func(datemath.NormalizedDate) bool,
) []event.EventView {
	views := make([]event.EventView, 0, len(events))
	for _, ev := range events {
		n, ok := idx.DateAt(ev.ID, now)
		if !ok || !keep(n) {
			continue
		}
		st := uc.resolver.classifyAt(ev, n, now)
		if status != "" && st != status {
			continue
		}
		views = append(views, event.EventView{Event: ev, Date: n, Status: st})
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i].Date.Time, views[j].Date.Time
		if !a.Equal(b) {
			return a.Before(b)
		}
		return views[i].Event.ID < views[j].Event.ID
	})
	return views
}
