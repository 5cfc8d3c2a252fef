package middleware

import (
	"integra-recife/pkg/log"
)

const defaultRequestsPerMin = 6

// Config holds the middleware tunables.
type Config struct {
	RequestsPerMin int // per client, for rate limited routes
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = defaultRequestsPerMin
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
