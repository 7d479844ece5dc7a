package middleware

import (
	"room-booking/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RequestsPerMin int    // per client IP; 0 disables rate limiting
	TelegramSecret string // expected X-Telegram-Bot-Api-Secret-Token; empty disables the check
}

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
