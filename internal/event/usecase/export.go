package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"integra-recife/internal/event"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
	"integra-recife/pkg/gcalendar"
)

const icsUIDDomain = "integra-recife"

// ExportICS renders the events of a window as an iCalendar feed.
func (uc *implUseCase) ExportICS(ctx context.Context, input event.ListEventsInput) (event.ExportICSOutput, error) {
	out, err := uc.List(ctx, input)
	if err != nil {
		return event.ExportICSOutput{}, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Integra Recife//Agenda//PT")
	cal.SetXWRCalName(defaultCalendarName)
	cal.SetXWRTimezone(uc.parser.Location().String())

	for _, v := range out.Events {
		addICSEvent(cal, v, uc.cfg.DefaultDuration)
	}

	return event.ExportICSOutput{
		Filename: fmt.Sprintf("agenda-%s-%s.ics", out.Window.FromDay(), out.Window.ToDay()),
		Body:     cal.Serialize(),
	}, nil
}

func addICSEvent(cal *ics.Calendar, v event.EventView, duration time.Duration) {
	ve := cal.AddEvent(fmt.Sprintf("event-%d@%s", v.Event.ID, icsUIDDomain))
	stamp := v.Event.UpdatedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	ve.SetDtStampTime(stamp)
	ve.SetSummary(v.Event.Title)
	if v.Event.Description != "" {
		ve.SetDescription(v.Event.Description)
	}
	if v.Event.Location != "" {
		ve.SetLocation(v.Event.Location)
	}
	if v.Event.Category != "" {
		ve.SetProperty(ics.ComponentPropertyCategories, v.Event.Category)
	}
	ve.SetProperty(ics.ComponentPropertyStatus, icsStatus(v.Status))

	start, end := eventSpan(v.Date, duration)
	if v.Date.HasTime {
		ve.SetStartAt(start)
		ve.SetEndAt(end)
	} else {
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(end)
	}
}

// eventSpan gives timed events the default duration and date-only events a whole day.
func eventSpan(n datemath.NormalizedDate, duration time.Duration) (time.Time, time.Time) {
	if n.HasTime {
		return n.Time, n.Time.Add(duration)
	}
	start := n.Day().Time(n.Time.Location())
	return start, n.Day().AddDays(1).Time(n.Time.Location())
}

func icsStatus(s model.EventStatus) string {
	switch s {
	case model.EventStatusCancelled:
		return "CANCELLED"
	case model.EventStatusPostponed, model.EventStatusInactive:
		return "TENTATIVE"
	}
	return "CONFIRMED"
}

// AddToGoogleCalendar copies an event to the configured Google Calendar.
// An event already copied is returned as-is instead of being duplicated.
func (uc *implUseCase) AddToGoogleCalendar(ctx context.Context, id int64) (event.GoogleCalendarOutput, error) {
	if uc.calendar == nil || uc.cfg.CalendarID == "" {
		return event.GoogleCalendarOutput{}, event.ErrCalendarNotConfigured
	}

	detail, err := uc.Detail(ctx, id)
	if err != nil {
		return event.GoogleCalendarOutput{}, err
	}
	v := detail.Event
	sourceID := strconv.FormatInt(v.Event.ID, 10)

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		SourceID:   sourceID,
		MaxResults: 1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddToGoogleCalendar calendar.ListEvents: %v", err)
		return event.GoogleCalendarOutput{}, event.ErrCalendarSyncFailed
	}
	if len(existing) > 0 {
		return event.GoogleCalendarOutput{EventID: existing[0].ID, HTMLLink: existing[0].HtmlLink}, nil
	}

	start, end := eventSpan(v.Date, uc.cfg.DefaultDuration)
	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     v.Event.Title,
		Description: v.Event.Description,
		Location:    v.Event.Location,
		StartTime:   start,
		EndTime:     end,
		AllDay:      !v.Date.HasTime,
		Timezone:    uc.parser.Location().String(),
		SourceID:    sourceID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddToGoogleCalendar calendar.CreateEvent: %v", err)
		return event.GoogleCalendarOutput{}, event.ErrCalendarSyncFailed
	}

	return event.GoogleCalendarOutput{EventID: created.ID, HTMLLink: created.HtmlLink}, nil
}
