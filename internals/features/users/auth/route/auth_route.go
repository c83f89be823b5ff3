package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "invigileye_backend/internals/features/users/auth/controller"
	rateLimiter "invigileye_backend/internals/middlewares"
)

// AuthRoutes: /api/auth is public.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db, validator.New())

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Get("/invigilators", authController.Invigilators)
}
