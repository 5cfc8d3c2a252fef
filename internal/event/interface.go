package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Listing and calendar grid
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, id int64) (DetailEventOutput, error)
	CalendarDays(ctx context.Context, input CalendarDaysInput) (CalendarDaysOutput, error)
	EventsOnDay(ctx context.Context, input DayEventsInput) (DayEventsOutput, error)

	// Status lifecycle
	TransitionPastEvents(ctx context.Context, input TransitionInput) (TransitionOutput, error)

	// Export
	ExportICS(ctx context.Context, input ListEventsInput) (ExportICSOutput, error)
	AddToGoogleCalendar(ctx context.Context, id int64) (GoogleCalendarOutput, error)
}
