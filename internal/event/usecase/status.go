package usecase

import (
	"context"
	"time"

	"integra-recife/internal/event"
	repo "integra-recife/internal/event/repository"
	"integra-recife/internal/model"
)

// TransitionPastEvents loads the ativo events and concludes those already in the past.
// Safe to run concurrently from several sources: the store write is conditional.
func (uc *implUseCase) TransitionPastEvents(ctx context.Context, input event.TransitionInput) (event.TransitionOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = uc.parser.Now()
	}
	source := input.Source
	if source == "" {
		source = event.SourceManual
	}
	started := time.Now()

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Status: model.EventStatusActive})
	if err != nil {
		err = errStore(err)
		uc.l.Errorf(ctx, "uc.TransitionPastEvents ListEvents: %v", err)
		uc.observer.RecordTransition(source, 0, time.Since(started), err)
		return event.TransitionOutput{RanAt: now}, err
	}

	n, err := uc.resolver.TransitionPastEvents(ctx, events, now)
	uc.observer.RecordTransition(source, n, time.Since(started), err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TransitionPastEvents resolver.TransitionPastEvents: %v", err)
		return event.TransitionOutput{RanAt: now}, err
	}

	if n > 0 {
		uc.l.Infof(ctx, "uc.TransitionPastEvents: %d event(s) concluded (source=%s)", n, source)
		payload := concludedPayload{Count: n, Source: source, RanAt: now.Format(time.RFC3339)}
		if err := uc.publisher.Publish(ctx, statusConcludedMessage, payload); err != nil {
			uc.l.Warnf(ctx, "uc.TransitionPastEvents publisher.Publish: %v", err)
		}
	}

	return event.TransitionOutput{Transitioned: n, RanAt: now}, nil
}
