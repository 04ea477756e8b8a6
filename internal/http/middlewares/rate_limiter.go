package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)

// RateLimiter allows limit requests per client IP in each fixed window.
// Paths listed in skip are never counted.
func RateLimiter(limit int, window time.Duration, skip ...string) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastSweep = time.Now()
	)

	skipped := make(map[string]struct{}, len(skip))
	for _, path := range skip {
		skipped[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skipped[c.Path()]; ok {
				return next(c)
			}

			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			if now.Sub(lastSweep) > window {
				for k, b := range buckets {
					if now.Sub(b.start) > window {
						delete(buckets, k)
					}
				}
				lastSweep = now
			}

			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				retryAfter := b.start.Add(window).Sub(now)
				mu.Unlock()

				h := c.Response().Header()
				h.Set(HeaderRateLimitLimit, strconv.Itoa(limit))
				h.Set(HeaderRateLimitRemaining, "0")
				h.Set(HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			remaining := limit - b.count
			mu.Unlock()

			h := c.Response().Header()
			h.Set(HeaderRateLimitLimit, strconv.Itoa(limit))
			h.Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))

			return next(c)
		}
	}
}
