package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"integra-recife/internal/event"
	"integra-recife/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// List godoc
// @Summary     List events in a calendar window
// @Description Returns the events of the window in date order, each with its normalized date and resolved status.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       window     query string false "today, week, weekend, month or custom (default: month)"
// @Param       from       query string false "Custom window start (YYYY-MM-DD)"
// @Param       to         query string false "Custom window end (YYYY-MM-DD)"
// @Param       category   query string false "Category, todos for all"
// @Param       secretaria query string false "Secretaria (cultura, turismo, todas)"
// @Param       status     query string false "Resolved status (ativo, concluido, ...)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWindowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns one event with its normalized date and resolved status.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Transition godoc
// @Summary     Conclude past events now
// @Description Moves every ativo event whose date is already past to concluido. Safe to call while the scheduler runs.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Success     200 {object} transitionResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/events/status/transition [POST]
func (h *handler) Transition(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TransitionPastEvents(ctx, event.TransitionInput{Source: event.SourceManual})
	if err != nil {
		h.l.Errorf(ctx, "uc.TransitionPastEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTransitionResp(output))
}

// ExportICS godoc
// @Summary     Export a calendar window as iCalendar
// @Description Returns the window's events as a text/calendar feed.
// @Tags        Events
// @Produce     text/calendar
// @Param       window     query string false "today, week, weekend, month or custom (default: month)"
// @Param       from       query string false "Custom window start (YYYY-MM-DD)"
// @Param       to         query string false "Custom window end (YYYY-MM-DD)"
// @Param       category   query string false "Category, todos for all"
// @Param       secretaria query string false "Secretaria (cultura, turismo, todas)"
// @Success     200 {string} string "iCalendar body"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/events/calendar.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWindowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportICS(ctx, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, icsContentType, []byte(output.Body))
}

// AddToGoogleCalendar godoc
// @Summary     Add an event to the city Google Calendar
// @Description Creates the event in the configured Google Calendar, or returns the existing copy.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} googleCalendarResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     501 {object} response.Resp "Google Calendar not configured"
// @Failure     502 {object} response.Resp "Google Calendar error"
// @Router      /api/v1/events/{id}/google-calendar [POST]
func (h *handler) AddToGoogleCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddToGoogleCalendar(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddToGoogleCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGoogleCalendarResp(output))
}

// CalendarDays godoc
// @Summary     Days with events
// @Description Returns the days of the window that have at least one event, with the event count.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       window     query string false "today, week, weekend, month or custom (default: month)"
// @Param       from       query string false "Custom window start (YYYY-MM-DD)"
// @Param       to         query string false "Custom window end (YYYY-MM-DD)"
// @Param       category   query string false "Category, todos for all"
// @Param       secretaria query string false "Secretaria (cultura, turismo, todas)"
// @Param       status     query string false "Resolved status"
// @Success     200 {object} calendarDaysResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/calendar/days [GET]
func (h *handler) CalendarDays(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWindowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CalendarDays(ctx, req.toCalendarInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarDays: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarDaysResp(output))
}

// EventsOnDay godoc
// @Summary     Events on a day
// @Description Returns the events on the selected day in date order.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       date       path  string true  "Day (YYYY-MM-DD)"
// @Param       category   query string false "Category, todos for all"
// @Param       secretaria query string false "Secretaria (cultura, turismo, todas)"
// @Param       status     query string false "Resolved status"
// @Success     200 {object} dayEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Data service unavailable"
// @Router      /api/v1/calendar/days/{date} [GET]
func (h *handler) EventsOnDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EventsOnDay(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EventsOnDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayEventsResp(output))
}
