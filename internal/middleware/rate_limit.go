package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit throttles a route group. Authenticated requests are keyed by the
// user id from the JWT middleware, anonymous ones by client IP, so the auth
// endpoints can be limited before any identity exists.
func RateLimit(scope string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Second
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			key := c.IP()
			if id, ok := c.Locals("user_id").(uint); ok && id != 0 {
				key = fmt.Sprintf("u%d", id)
			}
			return scope + ":" + key
		},
	})
}
