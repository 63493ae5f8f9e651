package http_ratelimit_middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	http_common "github.com/memeparty/server/internal/delivery/http/common"
)

// New builds a per-client-IP rate limiter backed by redis. The counter
// is bumped with INCR and bounded by EXPIRE inside one pipeline, which
// keeps the read-bump-expire sequence close enough to atomic here.
func New(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		panic("redis client is required for the rate limiter")
	}

	logger := slog.Default()

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		pipe := client.Pipeline()
		incr := pipe.Incr(key)
		pipe.Expire(key, window)
		if _, err := pipe.Exec(); err != nil {
			logger.Error("rate limit pipeline failed", "error", err)
			c.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			c.Abort()
			return
		}

		if incr.Val() > int64(maxRequests) {
			c.JSON(http.StatusTooManyRequests, http_common.ErrorResponse{
				Message: "too many requests",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
