package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"integra-recife/internal/event"
	"integra-recife/internal/middleware"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
	"integra-recife/pkg/log"
)

type fakeUseCase struct {
	listInput   event.ListEventsInput
	dayInput    event.DayEventsInput
	transitions []event.TransitionInput
	err         error
}

var recife, _ = time.LoadLocation("America/Recife")

func sampleView() event.EventView {
	at := time.Date(2025, 10, 15, 18, 0, 0, 0, recife)
	return event.EventView{
		Event:  model.Event{ID: 7, Title: "Frevo", RawDate: "2025-10-15T18:00:00", Category: "música", Status: model.EventStatusActive},
		Date:   datemath.NormalizedDate{Time: at, HasTime: true},
		Status: model.EventStatusConcluded,
	}
}

func (f *fakeUseCase) List(ctx context.Context, in event.ListEventsInput) (event.ListEventsOutput, error) {
	f.listInput = in
	if f.err != nil {
		return event.ListEventsOutput{}, f.err
	}
	return event.ListEventsOutput{Events: []event.EventView{sampleView()}}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, id int64) (event.DetailEventOutput, error) {
	if f.err != nil {
		return event.DetailEventOutput{}, f.err
	}
	if id != 7 {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}
	return event.DetailEventOutput{Event: sampleView()}, nil
}

func (f *fakeUseCase) CalendarDays(ctx context.Context, in event.CalendarDaysInput) (event.CalendarDaysOutput, error) {
	if f.err != nil {
		return event.CalendarDaysOutput{}, f.err
	}
	return event.CalendarDaysOutput{Days: []event.DaySummary{
		{Day: datemath.Day{Year: 2025, Month: time.October, Day: 15}, Count: 2},
	}}, nil
}

func (f *fakeUseCase) EventsOnDay(ctx context.Context, in event.DayEventsInput) (event.DayEventsOutput, error) {
	f.dayInput = in
	if f.err != nil {
		return event.DayEventsOutput{}, f.err
	}
	d, _ := datemath.ParseDay(in.Day)
	return event.DayEventsOutput{Day: d, Events: []event.EventView{sampleView()}}, nil
}

func (f *fakeUseCase) TransitionPastEvents(ctx context.Context, in event.TransitionInput) (event.TransitionOutput, error) {
	f.transitions = append(f.transitions, in)
	if f.err != nil {
		return event.TransitionOutput{}, f.err
	}
	return event.TransitionOutput{Transitioned: 3}, nil
}

func (f *fakeUseCase) ExportICS(ctx context.Context, in event.ListEventsInput) (event.ExportICSOutput, error) {
	if f.err != nil {
		return event.ExportICSOutput{}, f.err
	}
	return event.ExportICSOutput{Filename: "agenda.ics", Body: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}, nil
}

func (f *fakeUseCase) AddToGoogleCalendar(ctx context.Context, id int64) (event.GoogleCalendarOutput, error) {
	if f.err != nil {
		return event.GoogleCalendarOutput{}, f.err
	}
	return event.GoogleCalendarOutput{EventID: "g-1", HTMLLink: "https://calendar.google.com/g-1"}, nil
}

func newTestRouter(uc event.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, middleware.Config{RequestsPerMin: 600}))
	return r
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Transient bool            `json:"transient"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return e
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodGet, "/api/v1/events?window=weekend&category=M%C3%BAsica&secretaria=cultura")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.listInput.Window != "weekend" || uc.listInput.Category != "Música" || uc.listInput.Secretaria != "cultura" {
		t.Errorf("input = %+v", uc.listInput)
	}

	var data listResp
	if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 1 || len(data.Events) != 1 {
		t.Fatalf("events = %+v", data.Events)
	}
	got := data.Events[0]
	if got.Day != "2025-10-15" || !got.HasTime || got.Status != "concluido" || got.StatusLabel != "Concluído" {
		t.Errorf("event = %+v", got)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    string
		method    string
		code      int
		transient bool
	}{
		{"Invalid window", event.ErrInvalidWindow, "/api/v1/events?window=yearly", http.MethodGet, http.StatusBadRequest, false},
		{"Store unavailable", errors.Join(event.ErrStoreUnavailable, errors.New("disk")), "/api/v1/events", http.MethodGet, http.StatusServiceUnavailable, true},
		{"Calendar not configured", event.ErrCalendarNotConfigured, "/api/v1/events/7/google-calendar", http.MethodPost, http.StatusNotImplemented, false},
		{"Calendar sync failed", event.ErrCalendarSyncFailed, "/api/v1/events/7/google-calendar", http.MethodPost, http.StatusBadGateway, false},
		{"Unknown error", errors.New("boom"), "/api/v1/calendar/days", http.MethodGet, http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tt.err})
			w := serve(r, tt.method, tt.target)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			if e := decode(t, w); e.Transient != tt.transient {
				t.Errorf("transient = %v, want %v", e.Transient, tt.transient)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"Found", "/api/v1/events/7", http.StatusOK},
		{"Not found", "/api/v1/events/8", http.StatusNotFound},
		{"Non numeric id", "/api/v1/events/abc", http.StatusBadRequest},
		{"Negative id", "/api/v1/events/-1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(r, http.MethodGet, tt.target); w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodPost, "/api/v1/events/status/transition")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(uc.transitions) != 1 || uc.transitions[0].Source != event.SourceManual {
		t.Errorf("transitions = %+v", uc.transitions)
	}

	var data transitionResp
	json.Unmarshal(decode(t, w).Data, &data)
	if data.Transitioned != 3 {
		t.Errorf("transitioned = %d, want 3", data.Transitioned)
	}
}

func TestExportICS(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := serve(r, http.MethodGet, "/api/v1/events/calendar.ics?window=month")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "agenda.ics") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestEventsOnDay(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	t.Run("Valid day", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/calendar/days/2025-10-15?category=teatro")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.dayInput.Day != "2025-10-15" || uc.dayInput.Category != "teatro" {
			t.Errorf("input = %+v", uc.dayInput)
		}
		var data dayEventsResp
		json.Unmarshal(decode(t, w).Data, &data)
		if data.Day != "2025-10-15" || len(data.Events) != 1 {
			t.Errorf("data = %+v", data)
		}
	})

	t.Run("Invalid day", func(t *testing.T) {
		if w := serve(r, http.MethodGet, "/api/v1/calendar/days/2025-02-30"); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCalendarDays(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := serve(r, http.MethodGet, "/api/v1/calendar/days?window=month")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data calendarDaysResp
	json.Unmarshal(decode(t, w).Data, &data)
	if len(data.Days) != 1 || data.Days[0].Day != "2025-10-15" || data.Days[0].Count != 2 {
		t.Errorf("days = %+v", data.Days)
	}
}
