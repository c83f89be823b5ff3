package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "invigileye_backend/internals/helpers"
)

// Locals keys filled by AuthJWT.
const (
	LocUserID       = "userID"
	LocUserRole     = "userRole"
	LocUserEmail    = "userEmail"
	LocAuthRequired = "authRequired"
)

type AuthJWTOpts struct {
	Secret string
	// Required: reject requests without a bearer token. When false, anonymous
	// requests pass through and role guards are skipped for them.
	Required bool
}

// Claims carried by access tokens issued at login.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		c.Locals(LocAuthRequired, o.Required)

		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			if o.Required {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
			}
			return c.Next()
		}

		claims, err := ParseToken(raw, secret)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(LocUserID, claims.Subject)
		c.Locals(LocUserRole, claims.Role)
		if claims.Email != "" {
			c.Locals(LocUserEmail, claims.Email)
		}
		return c.Next()
	}
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(raw, secret string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
