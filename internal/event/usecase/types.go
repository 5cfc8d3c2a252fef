package usecase

import (
	"context"

	"integra-recife/pkg/gcalendar"
)

// CalendarClient is the subset of the Google Calendar client used here.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// concludedPayload is published after a transition that moved at least one event.
type concludedPayload struct {
	Count  int    `json:"count"`
	Source string `json:"source"`
	RanAt  string `json:"ran_at"`
}
