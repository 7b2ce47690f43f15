package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"study-planner/pkg/response"
)

// limiterCacheSize bounds how many client limiters are kept alive.
const limiterCacheSize = 1024

// RateLimit enforces a per-client request budget. Clients are keyed by
// session id (falling back to remote IP) and tracked in a bounded LRU so
// abandoned sessions do not pile up.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		panic(err) // only reachable with a non-positive constant size
	}

	perSecond := rate.Limit(float64(mw.rateLimitPerMin) / 60.0)
	burst := mw.rateLimitPerMin

	return func(c *gin.Context) {
		key := SessionID(c)
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
