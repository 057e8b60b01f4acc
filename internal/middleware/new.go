package middleware

import (
	"crashvault/pkg/log"
)

type Middleware struct {
	l            log.Logger
	maxBodyBytes int64
	limiter      *rateLimiter
}

// New wires the HTTP middlewares. ratePerMin 0 disables throttling.
func New(l log.Logger, maxBodyBytes int64, ratePerMin int) Middleware {
	m := Middleware{
		l:            l,
		maxBodyBytes: maxBodyBytes,
	}
	if ratePerMin > 0 {
		m.limiter = newRateLimiter(ratePerMin)
	}
	return m
}
