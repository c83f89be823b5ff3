package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, role, secret string) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func guardedApp(required bool) *fiber.App {
	app := fiber.New()
	g := app.Group("/api", AuthJWT(AuthJWTOpts{Secret: "s3cret", Required: required}))
	g.Get("/open", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	g.Post("/admin", OnlyRoles("admins only", "admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func status(t *testing.T, app *fiber.App, method, url, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthOptional(t *testing.T) {
	app := guardedApp(false)

	assert.Equal(t, fiber.StatusOK, status(t, app, http.MethodGet, "/api/open", ""))
	assert.Equal(t, fiber.StatusOK, status(t, app, http.MethodPost, "/api/admin", ""))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, http.MethodGet, "/api/open", "garbage"))
	assert.Equal(t, fiber.StatusForbidden, status(t, app, http.MethodPost, "/api/admin", signed(t, "invigilator", "s3cret")))
	assert.Equal(t, fiber.StatusOK, status(t, app, http.MethodPost, "/api/admin", signed(t, "admin", "s3cret")))
}

func TestAuthRequired(t *testing.T) {
	app := guardedApp(true)

	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, http.MethodGet, "/api/open", ""))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, http.MethodGet, "/api/open", signed(t, "admin", "wrong")))
	assert.Equal(t, fiber.StatusOK, status(t, app, http.MethodGet, "/api/open", signed(t, "invigilator", "s3cret")))
}
