package middleware

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
)

// ResponseCache caches successful GET responses in Redis for a short TTL.
// The catalog is read-heavy and written only by the scraper, so serving a
// slightly stale page is acceptable at this layer (the engine itself
// never caches). Redis failures are treated as cache misses.
func ResponseCache(rdb *redis.Client, ttl time.Duration) fiber.Handler {
	if rdb == nil || ttl <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := "respcache:" + c.OriginalURL()
		if cached, err := rdb.Get(c.Context(), key).Bytes(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := append([]byte(nil), c.Response().Body()...)
			rdb.Set(c.Context(), key, body, ttl)
		}
		c.Set("X-Cache", "MISS")
		return nil
	}
}
