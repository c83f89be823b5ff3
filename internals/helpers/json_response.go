package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JsonError: {success:false, error}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// JsonConflict: 409 with the conflicting record attached.
func JsonConflict(c *fiber.Ctx, errTitle, message string, conflict any) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"success":  false,
		"error":    errTitle,
		"message":  message,
		"conflict": conflict,
	})
}

// JsonValidationError: 400 with per-field reasons.
func JsonValidationError(c *fiber.Ctx, message string, fieldErrors map[string]string) error {
	if strings.TrimSpace(message) == "" {
		message = "Validation failed"
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Error:   message,
		Errors:  fieldErrors,
	})
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusTooManyRequests:
		return "Too many requests"
	default:
		return "Internal server error"
	}
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonSuccess: {success:true, ...fields}
func JsonSuccess(c *fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(body)
}

// JsonOK: {success:true, message}
func JsonOK(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return JsonSuccess(c, fiber.StatusOK, fiber.Map{"message": message})
}

// JsonCreated: 201 {success:true, id, message}
func JsonCreated(c *fiber.Ctx, id uint, message string) error {
	return JsonSuccess(c, fiber.StatusCreated, fiber.Map{"id": id, "message": message})
}

// JsonList: lists are sent as a bare array; nil becomes [].
func JsonList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
