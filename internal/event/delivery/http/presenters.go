package http

import (
	"strings"
	"time"

	"integra-recife/internal/event"
	"integra-recife/pkg/datemath"
)

// --- Request DTOs ---

type windowReq struct {
	Window     string `form:"window"`
	From       string `form:"from"`
	To         string `form:"to"`
	Category   string `form:"category"`
	Secretaria string `form:"secretaria"`
	Status     string `form:"status"`
}

func (r windowReq) validate() error { return nil }

func (r windowReq) windowInput() event.WindowInput {
	return event.WindowInput{
		Window: strings.TrimSpace(r.Window),
		From:   strings.TrimSpace(r.From),
		To:     strings.TrimSpace(r.To),
	}
}

func (r windowReq) filter() event.Filter {
	return event.Filter{
		Category:   strings.TrimSpace(r.Category),
		Secretaria: strings.TrimSpace(r.Secretaria),
		Status:     strings.TrimSpace(r.Status),
	}
}

func (r windowReq) toListInput() event.ListEventsInput {
	return event.ListEventsInput{WindowInput: r.windowInput(), Filter: r.filter()}
}

func (r windowReq) toCalendarInput() event.CalendarDaysInput {
	return event.CalendarDaysInput{WindowInput: r.windowInput(), Filter: r.filter()}
}

// ---

type dayReq struct {
	Day        string `uri:"date"`
	Category   string `form:"category"`
	Secretaria string `form:"secretaria"`
	Status     string `form:"status"`
}

func (r dayReq) validate() error {
	if _, err := datemath.ParseDay(r.Day); err != nil {
		return errInvalidDay
	}
	return nil
}

func (r dayReq) toInput() event.DayEventsInput {
	return event.DayEventsInput{
		Day: r.Day,
		Filter: event.Filter{
			Category:   strings.TrimSpace(r.Category),
			Secretaria: strings.TrimSpace(r.Secretaria),
			Status:     strings.TrimSpace(r.Status),
		},
	}
}

// --- Response DTOs ---

type windowResp struct {
	Kind string    `json:"kind"`
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func newWindowResp(w datemath.Window) windowResp {
	return windowResp{Kind: string(w.Kind), From: w.From, To: w.To}
}

type eventResp struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	RawDate     string    `json:"raw_date"`
	Date        time.Time `json:"date"`
	Day         string    `json:"day"`
	HasTime     bool      `json:"has_time"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newEventResp(v event.EventView) eventResp {
	return eventResp{
		ID:          v.Event.ID,
		Title:       v.Event.Title,
		Description: v.Event.Description,
		RawDate:     v.Event.RawDate,
		Date:        v.Date.Time,
		Day:         v.Date.Day().String(),
		HasTime:     v.Date.HasTime,
		Location:    v.Event.Location,
		Category:    v.Event.Category,
		Status:      string(v.Status),
		StatusLabel: v.Status.Label(),
		UpdatedAt:   v.Event.UpdatedAt,
	}
}

func newEventResps(views []event.EventView) []eventResp {
	out := make([]eventResp, 0, len(views))
	for _, v := range views {
		out = append(out, newEventResp(v))
	}
	return out
}

type listResp struct {
	Window windowResp  `json:"window"`
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(o event.ListEventsOutput) listResp {
	return listResp{
		Window: newWindowResp(o.Window),
		Events: newEventResps(o.Events),
		Total:  len(o.Events),
	}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(o event.DetailEventOutput) detailResp {
	return detailResp{Event: newEventResp(o.Event)}
}

type daySummaryResp struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type calendarDaysResp struct {
	Window windowResp       `json:"window"`
	Days   []daySummaryResp `json:"days"`
}

func (h *handler) newCalendarDaysResp(o event.CalendarDaysOutput) calendarDaysResp {
	days := make([]daySummaryResp, 0, len(o.Days))
	for _, d := range o.Days {
		days = append(days, daySummaryResp{Day: d.Day.String(), Count: d.Count})
	}
	return calendarDaysResp{Window: newWindowResp(o.Window), Days: days}
}

type dayEventsResp struct {
	Day    string      `json:"day"`
	Events []eventResp `json:"events"`
}

func (h *handler) newDayEventsResp(o event.DayEventsOutput) dayEventsResp {
	return dayEventsResp{Day: o.Day.String(), Events: newEventResps(o.Events)}
}

type transitionResp struct {
	Transitioned int       `json:"transitioned"`
	RanAt        time.Time `json:"ran_at"`
}

func (h *handler) newTransitionResp(o event.TransitionOutput) transitionResp {
	return transitionResp{Transitioned: o.Transitioned, RanAt: o.RanAt}
}

type googleCalendarResp struct {
	EventID  string `json:"event_id"`
	HTMLLink string `json:"html_link,omitempty"`
}

func (h *handler) newGoogleCalendarResp(o event.GoogleCalendarOutput) googleCalendarResp {
	return googleCalendarResp{EventID: o.EventID, HTMLLink: o.HTMLLink}
}
