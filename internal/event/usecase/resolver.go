package usecase

import (
	"context"
	"time"

	"integra-recife/internal/event/repository"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

// Resolver derives lifecycle status from event dates and owns the ativo -> concluido write.
type Resolver struct {
	repo   repository.StatusRepository
	parser *datemath.Parser
}

// NewResolver creates a Resolver writing through repo.
func NewResolver(repo repository.StatusRepository, parser *datemath.Parser) *Resolver {
	return &Resolver{repo: repo, parser: parser}
}

// Classify returns the status an event should show at now. It never writes.
// Any status other than ativo is returned unchanged.
func (r *Resolver) Classify(ev model.Event, now time.Time) model.EventStatus {
	return r.classifyAt(ev, r.dateAt(ev.RawDate, now), now)
}

// dateAt parses raw, resolving an unparseable date to now so it never reads as past.
func (r *Resolver) dateAt(raw string, now time.Time) datemath.NormalizedDate {
	n, ok := r.parser.ParseChecked(datemath.FromString(raw))
	if !ok {
		return datemath.NormalizedDate{Time: now, HasTime: true}
	}
	return n
}

func (r *Resolver) classifyAt(ev model.Event, start datemath.NormalizedDate, now time.Time) model.EventStatus {
	if ev.Status != model.EventStatusActive {
		return ev.Status
	}
	if start.Before(now) {
		return model.EventStatusConcluded
	}
	return model.EventStatusActive
}

// PastEvents returns the ids of ativo events starting strictly before now.
func (r *Resolver) PastEvents(events []model.Event, now time.Time) []int64 {
	var ids []int64
	for _, ev := range events {
		if ev.Status != model.EventStatusActive {
			continue
		}
		if r.dateAt(ev.RawDate, now).Before(now) {
			ids = append(ids, ev.ID)
		}
	}
	return ids
}

// TransitionPastEvents concludes every past ativo event in one conditional update.
// The count is what the store matched, which can be lower than the candidates when
// another writer got there first. Store failures return 0 and are not retried.
func (r *Resolver) TransitionPastEvents(ctx context.Context, events []model.Event, now time.Time) (int, error) {
	ids := r.PastEvents(events, now)
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := r.repo.TransitionStatus(ctx, repository.TransitionStatusOptions{
		IDs:       ids,
		From:      model.EventStatusActive,
		To:        model.EventStatusConcluded,
		UpdatedAt: now,
	})
	if err != nil {
		return 0, errStore(err)
	}
	return n, nil
}
