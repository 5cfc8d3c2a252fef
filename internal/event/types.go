package event

import (
	"time"

	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
)

// --- Domain views ---

// EventView is an event with its parsed date and resolved status.
type EventView struct {
	Event  model.Event
	Date   datemath.NormalizedDate
	Status model.EventStatus
}

// DaySummary is a calendar grid marker.
type DaySummary struct {
	Day   datemath.Day
	Count int
}

// --- UseCase Inputs ---

// Filter narrows events by category, secretaria and resolved status.
// Category "todos" and empty values mean no filter.
type Filter struct {
	Category   string
	Secretaria string
	Status     string
}

// WindowInput selects a calendar window. From and To (YYYY-MM-DD) are used when Window is custom
// or when Window is empty and at least one bound is set.
type WindowInput struct {
	Window string
	From   string
	To     string
}

type ListEventsInput struct {
	WindowInput
	Filter
}

type CalendarDaysInput struct {
	WindowInput
	Filter
}

// Transition sources, used as a metrics label and in the published message.
const (
	SourceScheduler = "scheduler"
	SourceManual    = "manual"
	SourceStartup   = "startup"
)

// TransitionInput triggers a bulk transition. Zero Now means the current time.
type TransitionInput struct {
	Now    time.Time
	Source string
}

type DayEventsInput struct {
	Day string
	Filter
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Window datemath.Window
	Events []EventView
}

type DetailEventOutput struct {
	Event EventView
}

type CalendarDaysOutput struct {
	Window datemath.Window
	Days   []DaySummary
}

type DayEventsOutput struct {
	Day    datemath.Day
	Events []EventView
}

type TransitionOutput struct {
	Transitioned int
	RanAt        time.Time
}

type ExportICSOutput struct {
	Filename string
	Body     string
}

type GoogleCalendarOutput struct {
	EventID  string
	HTMLLink string
}
