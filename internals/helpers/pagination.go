package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// ===== Preset =====
var (
	AlertListOpts = Options{DefaultLimit: 50, MaxLimit: 200}
)

// ResolveLimit reads ?limit= (alias ?per_page=) and clamps it to opt.
func ResolveLimit(c *fiber.Ctx, opt Options) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("per_page"))
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		n = opt.DefaultLimit
	}
	if opt.MaxLimit > 0 && n > opt.MaxLimit {
		n = opt.MaxLimit
	}
	return n
}
