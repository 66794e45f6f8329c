package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"estaciona-api/internal/handler/httperr"
	"estaciona-api/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// Limiter is satisfied by *ratelimit.TokenBucket.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
	Capacity() int
}

// RateLimitByIP throttles per client IP. A nil limiter disables the check and
// a limiter failure lets the request through.
func RateLimitByIP(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Capacity()))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.Abort(c, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}

		c.Next()
	}
}
