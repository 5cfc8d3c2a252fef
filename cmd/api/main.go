package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"integra-recife/config"
	_ "integra-recife/docs" // Swagger docs
	"integra-recife/internal/event/repository/sqlite"
	eventUC "integra-recife/internal/event/usecase"
	"integra-recife/internal/httpserver"
	"integra-recife/internal/middleware"
	"integra-recife/internal/observability"
	"integra-recife/internal/scheduler"
	"integra-recife/pkg/bus"
	"integra-recife/pkg/datemath"
	"integra-recife/pkg/gcalendar"
	"integra-recife/pkg/log"
)

// @title       Integra Recife API
// @description City events calendar: date normalization, calendar windows and event status lifecycle.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Integra Recife...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	var observer observability.Observer = observability.NewNopObserver()
	if cfg.Metrics.Enabled {
		promObserver, obsErr := observability.NewPrometheusObserver(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
		if obsErr != nil {
			logger.Error(ctx, "Failed to register metrics: ", obsErr)
			return
		}
		observer = promObserver
	}

	// 4. Date interpretation
	weekStart, err := datemath.ParseWeekStart(cfg.Calendar.WeekStart)
	if err != nil {
		logger.Error(ctx, "Invalid calendar.week_start: ", err)
		return
	}
	parser, err := datemath.NewParser(cfg.Calendar.Timezone,
		datemath.WithReporter(observability.NewDateReporter(logger, observer)))
	if err != nil {
		logger.Error(ctx, "Invalid calendar.timezone: ", err)
		return
	}
	logger.Infof(ctx, "Calendar timezone: %s, week starts on %s", parser.Location(), weekStart)

	// 5. Event store
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open event store: ", err)
		return
	}
	defer db.Close()
	eventRepo := sqlite.New(db, logger)

	if cfg.Seed.File != "" {
		seedEvents, seedErr := sqlite.LoadSeedFile(cfg.Seed.File)
		if seedErr != nil {
			logger.Warnf(ctx, "Seed file not loaded: %v", seedErr)
		} else if n, seedErr := sqlite.Seed(ctx, eventRepo, seedEvents); seedErr != nil {
			logger.Warnf(ctx, "Seeding failed: %v", seedErr)
		} else if n > 0 {
			logger.Infof(ctx, "Seeded %d event(s) from %s", n, cfg.Seed.File)
		}
	}

	// 6. Status broadcast (optional)
	publisher := bus.NewNopPublisher()
	if cfg.Redis.Addr != "" {
		redisPublisher, pubErr := bus.NewRedisPublisher(ctx, bus.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		})
		if pubErr != nil {
			logger.Warnf(ctx, "Redis not available (optional): %v", pubErr)
		} else {
			publisher = redisPublisher
			logger.Infof(ctx, "Status broadcast enabled on %s", cfg.Redis.Channel)
		}
	}
	defer publisher.Close()

	// 7. Google Calendar (optional)
	var calendarClient eventUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the OAuth token")
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. Event UseCase
	uc := eventUC.New(logger, eventRepo, parser, publisher, calendarClient, observer, eventUC.Config{
		WeekStart:       weekStart,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		DefaultDuration: cfg.GoogleCalendar.DefaultDuration,
		CacheSize:       cfg.IndexCache.Size,
		CacheTTL:        cfg.IndexCache.TTL,
	})

	// 9. Status updater
	sched, err := scheduler.New(logger, uc, scheduler.Config{
		Enabled:    cfg.StatusUpdater.Enabled,
		Schedule:   cfg.StatusUpdater.Schedule,
		RunOnStart: cfg.StatusUpdater.RunOnStart,
		Timeout:    cfg.StatusUpdater.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize status updater: ", err)
		return
	}
	sched.Start(ctx)

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		EventUseCase:    uc,
		Middleware:      middleware.Config{RequestsPerMin: cfg.RateLimit.TransitionPerMin},
		Store:           db,
		MetricsHandler:  promhttp.Handler(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	stop()
	sched.Stop()
	logger.Info(context.Background(), "Server stopped gracefully")
}
