package middleware

import (
	"voice-task-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middleware set. A non-positive perMinute disables
// rate limiting.
func New(l log.Logger, perMinute int) Middleware {
	mw := Middleware{l: l}
	if perMinute > 0 {
		mw.limiter = newRateLimiter(perMinute)
	}
	return mw
}
