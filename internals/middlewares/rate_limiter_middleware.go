package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "invigileye_backend/internals/helpers"
)

func ipLimiter(limit int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: for all regular endpoints
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(300, 1*time.Minute, "Too many requests. Please try again later.")
}

// Login limiter (stricter)
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, 1*time.Minute, "Too many login attempts. Please wait a moment.")
}

// Pose detection pushes alerts in bursts; one client per camera host.
func PoseIngestRateLimiter() fiber.Handler {
	return ipLimiter(120, 1*time.Minute, "Too many alerts from this client. Slow down.")
}
