package ws

import (
	"time"

	"golang.org/x/time/rate"
)

// SendBurst is the number of gateway commands that can be sent at once before
// throttling kicks in.
var SendBurst = 5

// NewSendLimiter returns a rate limiter for gateway commands. The gateway
// allows 120 commands per minute; the burst is taken out of that quota.
func NewSendLimiter() *rate.Limiter {
	const perMinute = 120
	return rate.NewLimiter(
		rate.Every(time.Minute/(perMinute-time.Duration(SendBurst))),
		SendBurst,
	)
}

// NewDialLimiter returns a rate limiter for new gateway connections.
func NewDialLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(5*time.Second), 1)
}

// NewIdentityLimiter returns a rate limiter for Identify commands.
func NewIdentityLimiter() *rate.Limiter {
	return NewDialLimiter() // same quota
}

// NewGlobalIdentityLimiter returns a rate limiter for Identify commands
// across all shards.
func NewGlobalIdentityLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(24*time.Hour), 1000)
}
