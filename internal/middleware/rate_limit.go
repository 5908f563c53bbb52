package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateLimitPeriod = time.Minute

// RateLimiter allows at most limit requests per client IP and route per
// minute. A nil client or non-positive limit disables it; redis errors let
// the request through.
func RateLimiter(rdb *redis.Client, limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || limit <= 0 {
			return c.Next()
		}

		key := "rate_limit:" + c.IP() + ":" + c.Method() + ":" + c.Path()
		ctx := c.UserContext()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logrus.WithError(err).Warn("Rate limiter unavailable")
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitPeriod)
		}

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
		}
		return c.Next()
	}
}
