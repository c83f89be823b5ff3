package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/configs"
	authDTO "invigileye_backend/internals/features/users/auth/dto"
	"invigileye_backend/internals/features/users/auth/service"
	userDTO "invigileye_backend/internals/features/users/user/dto"
	helper "invigileye_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username, password and role are required")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Authenticate(reqCtx(c), ac.DB, req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login %q: %v", req.Username, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	token, err := service.IssueAccessToken(user, configs.JWTSecret, time.Now())
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	log.Printf("[INFO] user %q logged in as %s", user.Username, user.Role)
	return c.JSON(authDTO.LoginResponse{
		Success: true,
		User:    userDTO.FromModel(user),
		Token:   token,
	})
}

// GET /api/auth/invigilators
func (ac *AuthController) Invigilators(c *fiber.Ctx) error {
	rows, err := service.ListInvigilators(reqCtx(c), ac.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, userDTO.ToInvigilatorItems(rows))
}
