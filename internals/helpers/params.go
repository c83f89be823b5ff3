package helper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads a positive integer path param, 400 otherwise.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(n), nil
}

// ParseIDQuery is ParseIDParam for ?name=; ok is false when the query is absent.
func ParseIDQuery(c *fiber.Ctx, name string) (id uint, ok bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	n, perr := strconv.ParseUint(raw, 10, 64)
	if perr != nil || n == 0 {
		return 0, true, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(n), true, nil
}

// UnescapedParam: path params arrive raw, e.g. "john%40invigleye.com".
func UnescapedParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return strings.TrimSpace(raw)
}
