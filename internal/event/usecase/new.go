package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"integra-recife/internal/calendar"
	"integra-recife/internal/event/repository"
	"integra-recife/internal/observability"
	"integra-recife/pkg/bus"
	"integra-recife/pkg/datemath"
	pkgLog "integra-recife/pkg/log"
)

const (
	defaultCacheSize       = 64
	defaultCacheTTL        = 5 * time.Minute
	defaultEventDuration   = 2 * time.Hour
	defaultCalendarName    = "Agenda Integra Recife"
	statusConcludedMessage = "event.status.concluded"
)

// Config holds the tunables of the event use case.
type Config struct {
	WeekStart       time.Weekday
	CalendarID      string        // Google Calendar id; empty disables the sync
	DefaultDuration time.Duration // length given to events without an end time
	CacheSize       int
	CacheTTL        time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	parser    *datemath.Parser
	resolver  *Resolver
	publisher bus.Publisher
	calendar  CalendarClient
	observer  observability.Observer
	indexes   *expirable.LRU[string, *calendar.Index]
	cfg       Config
}

// New creates a new event UseCase instance. publisher, calendarClient and observer may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *datemath.Parser,
	publisher bus.Publisher,
	calendarClient CalendarClient,
	observer observability.Observer,
	cfg Config,
) *implUseCase {
	if publisher == nil {
		publisher = bus.NewNopPublisher()
	}
	if observer == nil {
		observer = observability.NewNopObserver()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = defaultEventDuration
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		parser:    parser,
		resolver:  NewResolver(repo, parser),
		publisher: publisher,
		calendar:  calendarClient,
		observer:  observer,
		indexes:   expirable.NewLRU[string, *calendar.Index](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:       cfg,
	}
}
