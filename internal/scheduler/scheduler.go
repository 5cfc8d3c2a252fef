package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"integra-recife/internal/event"
	pkgLog "integra-recife/pkg/log"
)

const (
	defaultSchedule = "*/5 * * * *"
	defaultTimeout  = 30 * time.Second
)

var ErrInvalidSchedule = errors.New("invalid status updater schedule")

// Transitioner concludes past events. Implemented by event.UseCase.
type Transitioner interface {
	TransitionPastEvents(ctx context.Context, input event.TransitionInput) (event.TransitionOutput, error)
}

// Config holds the status updater configuration.
type Config struct {
	Enabled    bool
	Schedule   string        // five-field cron expression
	RunOnStart bool          // run once synchronously inside Start
	Timeout    time.Duration // per-run deadline
}

// Scheduler runs the bulk status transition on a cron schedule.
// Overlapping runs are skipped rather than queued.
type Scheduler struct {
	cron     *cron.Cron
	uc       Transitioner
	l        pkgLog.Logger
	cfg      Config
	entryID  cron.EntryID
	stopOnce sync.Once
	stopped  chan struct{}
}

// New creates a Scheduler. The schedule is validated here so a bad config fails at startup.
func New(l pkgLog.Logger, uc Transitioner, cfg Config) (*Scheduler, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = defaultSchedule
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	s := &Scheduler{
		uc:      uc,
		l:       l,
		cfg:     cfg,
		stopped: make(chan struct{}),
	}
	s.cron = newCron(l)

	id, err := s.cron.AddFunc(cfg.Schedule, func() { s.run(context.Background(), event.SourceScheduler) })
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, cfg.Schedule, err)
	}
	s.entryID = id
	return s, nil
}

func newCron(l pkgLog.Logger) *cron.Cron {
	logger := cronLogger{l: l}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return cron.New(
		cron.WithParser(parser),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
}

// Start runs the startup transition when configured and starts the cron loop.
// The scheduler stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		s.l.Info(ctx, "scheduler: status updater disabled by config")
		close(s.stopped)
		return
	}

	if s.cfg.RunOnStart {
		s.run(ctx, event.SourceStartup)
	}

	s.cron.Start()
	s.l.Infof(ctx, "scheduler: status updater started (schedule=%s, timeout=%s)", s.cfg.Schedule, s.cfg.Timeout)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
}

// Stop waits for a running transition to finish. Safe to call multiple times.
func (s *Scheduler) Stop() {
	if !s.cfg.Enabled {
		return
	}
	s.stopOnce.Do(func() {
		<-s.cron.Stop().Done()
		close(s.stopped)
		s.l.Info(context.Background(), "scheduler: status updater stopped")
	})
}

// Done is closed once the scheduler has fully stopped.
func (s *Scheduler) Done() <-chan struct{} {
	return s.stopped
}

// Next returns the next scheduled run, or the zero time when not running.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) run(parent context.Context, source string) {
	ctx, cancel := context.WithTimeout(parent, s.cfg.Timeout)
	defer cancel()

	out, err := s.uc.TransitionPastEvents(ctx, event.TransitionInput{Source: source})
	if err != nil {
		s.l.Errorf(ctx, "scheduler.run(%s): %v", source, err)
		return
	}
	s.l.Debugf(ctx, "scheduler.run(%s): %d event(s) concluded", source, out.Transitioned)
}
