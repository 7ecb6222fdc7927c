package middleware

import (
	"net/http"
	"sync"

	"shareit/internal/handler/httperr"
	handlermw "shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles per caller: the identity header when present,
// otherwise the client IP.
type RateLimiter struct {
	limiters sync.Map
	cfg      config.GatewayConfig
}

func NewRateLimiter(cfg config.GatewayConfig) *RateLimiter {
	return &RateLimiter{cfg: cfg}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	burst := l.cfg.RateBurst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(l.cfg.RateRPS), burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(handlermw.SharerHeader)
		if key == "" {
			key = c.ClientIP()
		}

		if !l.getLimiter(key).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests,
				errs.Newf("rate limit exceeded for %s", key),
				httperr.CodeTooManyRequests, "Too many requests, slow down")
			return
		}

		c.Next()
	}
}
