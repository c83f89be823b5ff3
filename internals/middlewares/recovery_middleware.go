package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware turns panics into a 500; the stack only goes to the log,
// tagged with the request id.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			reqID, _ := c.Locals("reqid").(string)
			log.Printf("[PANIC] id=%s %s %s: %v\n%s", reqID, c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
