package middleware

import (
	"erp-admin/pkg/log"
)

// Config is what the middleware set needs from the service config.
type Config struct {
	// RequireBearer rejects requests without an Authorization bearer. Set it
	// when the ERP token is forwarded from the dashboard.
	RequireBearer bool
	// RateLimitPerMin bounds requests per client IP. Zero disables it.
	RateLimitPerMin int
}

type Middleware struct {
	l             log.Logger
	requireBearer bool
	limiter       *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:             l,
		requireBearer: cfg.RequireBearer,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
