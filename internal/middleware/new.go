package middleware

import (
	"study-planner/pkg/log"
)

// Middleware bundles the cross-cutting request handlers.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
}

// New creates the middleware set. rateLimitPerMin <= 0 disables rate
// limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
