package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"integra-recife/internal/event"
	repo "integra-recife/internal/event/repository"
	"integra-recife/internal/model"
	"integra-recife/pkg/datemath"
	"integra-recife/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is an in-memory store whose status update is a real compare-and-swap.
type fakeRepo struct {
	mu     sync.Mutex
	events map[int64]model.Event
	order  []int64

	listErr   error
	getErr    error
	updateErr error
	listCalls int
}

func newFakeRepo(events ...model.Event) *fakeRepo {
	r := &fakeRepo{events: make(map[int64]model.Event)}
	for _, ev := range events {
		r.events[ev.ID] = ev
		r.order = append(r.order, ev.ID)
	}
	return r
}

func (r *fakeRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev := model.Event{
		ID:       int64(len(r.order) + 1),
		Title:    opt.Title,
		RawDate:  opt.RawDate,
		Category: opt.Category,
		Status:   opt.Status,
	}
	r.events[ev.ID] = ev
	r.order = append(r.order, ev.ID)
	return ev, nil
}

func (r *fakeRepo) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return model.Event{}, r.getErr
	}
	return r.events[opt.ID], nil
}

func (r *fakeRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []model.Event
	for _, id := range r.order {
		ev := r.events[id]
		if opt.Status != "" && ev.Status != opt.Status {
			continue
		}
		if len(opt.Categories) > 0 && !containsFold(opt.Categories, ev.Category) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *fakeRepo) CountEvents(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events), nil
}

func (r *fakeRepo) TransitionStatus(ctx context.Context, opt repo.TransitionStatusOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	n := 0
	for _, id := range opt.IDs {
		ev, ok := r.events[id]
		if !ok || ev.Status != opt.From {
			continue
		}
		ev.Status = opt.To
		ev.UpdatedAt = opt.UpdatedAt
		r.events[id] = ev
		n++
	}
	return n, nil
}

func (r *fakeRepo) status(id int64) model.EventStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[id].Status
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

type publishedMessage struct {
	eventType string
	payload   any
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []publishedMessage
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, publishedMessage{eventType: eventType, payload: payload})
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fakeCalendar struct {
	existing []gcalendar.Event
	created  []gcalendar.CreateEventRequest
	listErr  error
	err      error
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.created = append(c.created, req)
	return &gcalendar.Event{ID: "gcal-1", HtmlLink: "https://calendar.google.com/e/gcal-1"}, nil
}

func (c *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.existing, nil
}

var (
	recife, _ = time.LoadLocation("America/Recife")
	// fixedNow is a Wednesday.
	fixedNow = time.Date(2025, 10, 15, 12, 0, 0, 0, recife)
)

func fixedParser() *datemath.Parser {
	return datemath.NewParserInLocation(recife, datemath.WithClock(func() time.Time { return fixedNow }))
}

func fixtureEvents() []model.Event {
	return []model.Event{
		{ID: 1, Title: "Frevo no Marco Zero", RawDate: "2025-10-01T19:00:00", Category: "Música", Status: model.EventStatusActive},
		{ID: 2, Title: "Teatro de Santa Isabel", RawDate: "15 de Outubro, 2025", Category: "teatro", Status: model.EventStatusActive},
		{ID: 3, Title: "Festival de Inverno", RawDate: "18/10/2025", Category: "Festival", Status: model.EventStatusActive},
		{ID: 4, Title: "Feira do Bom Jesus", RawDate: "2025-10-19T23:59:00", Category: "Gastronomia", Status: model.EventStatusActive},
		{ID: 5, Title: "Show cancelado", RawDate: "2020-01-01T00:00:00", Category: "música", Status: model.EventStatusCancelled},
		{ID: 6, Title: "Rota gastronômica", RawDate: "20 de outubro de 2025", Category: "gastronomia", Status: model.EventStatusActive},
		{ID: 7, Title: "Palestra", RawDate: "em breve", Category: "palestra", Status: model.EventStatusActive},
		{ID: 8, Title: "Auto da Compadecida", RawDate: "2025-11-05", Category: "teatro", Status: model.EventStatusPostponed},
	}
}

func newTestUseCase(r *fakeRepo, pub *fakePublisher, cal CalendarClient, cfg Config) *implUseCase {
	if pub == nil {
		pub = &fakePublisher{}
	}
	return New(&mockLogger{}, r, fixedParser(), pub, cal, nil, cfg)
}

func viewIDs(views []event.EventView) []int64 {
	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Event.ID)
	}
	return ids
}
