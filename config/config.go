package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Event engine
	Database      DatabaseConfig
	Calendar      CalendarConfig
	StatusUpdater StatusUpdaterConfig
	IndexCache    IndexCacheConfig
	Seed          SeedConfig

	// Integrations
	Redis          RedisConfig
	GoogleCalendar GoogleCalendarConfig
	Metrics        MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	TransitionPerMin int
}

type DatabaseConfig struct {
	Path string // sqlite file, or ":memory:"
}

// CalendarConfig anchors date interpretation: the zone every event date is read in,
// and the first day of the "week" window.
type CalendarConfig struct {
	Timezone  string
	WeekStart string
}

type StatusUpdaterConfig struct {
	Enabled    bool
	Schedule   string
	RunOnStart bool
	Timeout    time.Duration
}

type IndexCacheConfig struct {
	Size int
	TTL  time.Duration
}

type SeedConfig struct {
	File string
}

// RedisConfig enables the status broadcast when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// GoogleCalendarConfig enables the calendar sync when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	DefaultDuration time.Duration
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/integra-recife/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/integra-recife/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.TransitionPerMin = viper.GetInt("rate_limit.transition_per_min")

	// Event engine
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.WeekStart = viper.GetString("calendar.week_start")
	cfg.StatusUpdater.Enabled = viper.GetBool("status_updater.enabled")
	cfg.StatusUpdater.Schedule = viper.GetString("status_updater.schedule")
	cfg.StatusUpdater.RunOnStart = viper.GetBool("status_updater.run_on_start")
	cfg.StatusUpdater.Timeout = viper.GetDuration("status_updater.timeout")
	cfg.IndexCache.Size = viper.GetInt("index_cache.size")
	cfg.IndexCache.TTL = viper.GetDuration("index_cache.ttl")
	cfg.Seed.File = viper.GetString("seed.file")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Channel = viper.GetString("redis.channel")
	if redisURL := viper.GetString("redis_addr"); redisURL != "" {
		cfg.Redis.Addr = redisURL
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.DefaultDuration = viper.GetDuration("google_calendar.default_duration")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Metrics
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Namespace = viper.GetString("metrics.namespace")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone %q: %w", c.Calendar.Timezone, err)
	}
	if c.StatusUpdater.Enabled && c.StatusUpdater.Timeout <= 0 {
		return fmt.Errorf("status_updater.timeout must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "15s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.transition_per_min", 6)

	// Event engine
	viper.SetDefault("database.path", "data/events.db")
	viper.SetDefault("calendar.timezone", "America/Recife")
	viper.SetDefault("calendar.week_start", "sunday")
	viper.SetDefault("status_updater.enabled", true)
	viper.SetDefault("status_updater.schedule", "*/5 * * * *")
	viper.SetDefault("status_updater.run_on_start", true)
	viper.SetDefault("status_updater.timeout", "30s")
	viper.SetDefault("index_cache.size", 64)
	viper.SetDefault("index_cache.ttl", "5m")

	// Integrations
	viper.SetDefault("redis.channel", "integra-recife.events")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.default_duration", "2h")
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.namespace", "integra_recife")
}
