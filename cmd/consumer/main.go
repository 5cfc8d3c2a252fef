package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"integra-recife/config"
	"integra-recife/pkg/bus"
	"integra-recife/pkg/log"
)

// main is the entry point for the status broadcast consumer.
// It follows the messages published after each bulk transition and logs them.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Redis.Addr == "" {
		logger.Error(ctx, "redis.addr is required for the consumer")
		return
	}

	sub, err := bus.NewRedisSubscriber(ctx, bus.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Channel:  cfg.Redis.Channel,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer sub.Close()

	logger.Infof(ctx, "Consuming status broadcasts on %s", cfg.Redis.Channel)

	c := newConsumer(logger)
	if err := sub.Run(ctx, c.handle, func(err error) { logger.Warnf(ctx, "consumer: %v", err) }); err != nil {
		logger.Error(ctx, "Consumer stopped: ", err)
		return
	}

	logger.Infof(context.Background(), "Consumer stopped gracefully (%d event(s) concluded while running)", c.total)
}
