package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack-backend/internal/database"
	"github.com/fittrack/fittrack-backend/pkg/clientip"
)

const (
	// RateLimitWindow is the fixed counting window per client IP.
	RateLimitWindow = 60 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window.
	RateLimitMaxRequests = 60
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting.
	RateLimitKeyPrefix = "ratelimit:"
)

// RateLimitMiddleware enforces a fixed-window per-IP request limit backed by
// Redis. If Redis is unavailable the request is allowed (fail open).
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ipAddress := clientip.RealClientIP(r)
		ctx := context.Background()
		rateLimitKey := RateLimitKeyPrefix + ipAddress

		newCount, err := database.RedisClient.Incr(ctx, rateLimitKey).Result()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if newCount == 1 {
			database.RedisClient.Expire(ctx, rateLimitKey, RateLimitWindow)
		}

		if newCount > RateLimitMaxRequests {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintf(w, `{"success":false,"message":"Rate limit exceeded. Please try again later.","retry_after":%d}`, int(RateLimitWindow.Seconds()))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(RateLimitMaxRequests-newCount, 10))

		next.ServeHTTP(w, r)
	})
}
