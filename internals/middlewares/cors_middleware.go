package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"invigileye_backend/internals/configs"
)

// CorsMiddleware: origins from CORS_ALLOW_ORIGINS (comma separated, "*" by default).
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.CorsAllowOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: origins != "*",
	})
}
