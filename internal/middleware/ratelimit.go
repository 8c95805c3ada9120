package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tartarus/api/internal/config"
)

// RateLimit enforces a fixed window per client IP, backed by redis so the
// limit holds across replicas. The window key expires on its own; exceeding
// the threshold aborts with 429. A redis outage fails open: throttling is not
// worth rejecting legitimate traffic for.
func RateLimit(cfg config.RateLimitConfig, cache *redis.Client, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := cache.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limit counter unavailable")
			c.Next()
			return
		}
		if count == 1 {
			cache.Expire(c.Request.Context(), key, cfg.Window)
		}

		if count > int64(cfg.MaxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
