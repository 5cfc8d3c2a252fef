package repository

import (
	"context"

	"integra-recife/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
	StatusRepository
}

// EventRepository defines read and seed access for events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	CountEvents(ctx context.Context) (int, error)
}

// StatusRepository holds the conditional status write.
type StatusRepository interface {
	// TransitionStatus moves the given events from opt.From to opt.To in one statement.
	// Rows whose status is no longer opt.From are left untouched and not counted.
	TransitionStatus(ctx context.Context, opt TransitionStatusOptions) (int, error)
}
