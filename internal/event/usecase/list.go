package usecase

import (
	"context"

	"integra-recife/internal/event"
	repo "integra-recife/internal/event/repository"
)

// List returns the events inside the requested window, in date order.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	w, err := uc.resolveWindow(input.WindowInput)
	if err != nil {
		return event.ListEventsOutput{}, err
	}
	status, err := statusFilter(input.Status)
	if err != nil {
		return event.ListEventsOutput{}, err
	}

	events, err := uc.loadEvents(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List loadEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	idx := uc.indexFor(ctx, events)
	views := uc.viewsWhere(events, idx, uc.parser.Now(), status, w.Contains)

	return event.ListEventsOutput{
		Window: w,
		Events: views,
	}, nil
}

// Detail returns one event with its parsed date and resolved status.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (event.DetailEventOutput, error) {
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailEventOutput{}, errStore(err)
	}
	if ev.ID == 0 {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}

	now := uc.parser.Now()
	n := uc.resolver.dateAt(ev.RawDate, now)
	return event.DetailEventOutput{
		Event: event.EventView{
			Event:  ev,
			Date:   n,
			Status: uc.resolver.classifyAt(ev, n, now),
		},
	}, nil
}
