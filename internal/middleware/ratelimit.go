package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/platform/config"
)

// NewRateLimiterMiddleware builds a per-IP rate limiter for the given rate
// string ("5-M" is five requests per minute). Counters live in Redis when
// REDIS_ADDR is configured so limits hold across replicas; otherwise they
// fall back to process-local memory.
func NewRateLimiterMiddleware(cfg *config.Config, logger *slog.Logger, rateStr string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		logger.Error("invalid rate limit format, rate limiting disabled", "rate", rateStr, "error", err)
		return func(c *gin.Context) { c.Next() }
	}

	var store limiter.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "portfolio_ratelimit",
		})
		if err != nil {
			logger.Error("failed to create redis rate limit store, falling back to memory", "error", err)
			store = memory.NewStore()
		}
	} else {
		store = memory.NewStore()
	}

	return mgin.NewMiddleware(limiter.New(store, rate))
}
