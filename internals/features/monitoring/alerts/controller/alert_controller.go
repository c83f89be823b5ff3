package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertDTO "invigileye_backend/internals/features/monitoring/alerts/dto"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	"invigileye_backend/internals/features/monitoring/alerts/service"
	helper "invigileye_backend/internals/helpers"
)

type AlertController struct {
	DB *gorm.DB
}

func NewAlertController(db *gorm.DB) *AlertController {
	return &AlertController{DB: db}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// GET /api/alerts?limit=
func (ctl *AlertController) List(c *fiber.Ctx) error {
	rows, err := service.ListRecent(reqCtx(c), ctl.DB, helper.ResolveLimit(c, helper.AlertListOpts))
	if err != nil {
		log.Printf("[ERROR] list alerts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// GET /api/alerts/exam/:examId
func (ctl *AlertController) ListByExam(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListByExam(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// POST /api/alerts
func (ctl *AlertController) Create(c *fiber.Ctx) error {
	var req alertDTO.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.Type == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Type is required")
	}
	if !alertModel.IsValidSeverity(req.Severity) {
		return helper.JsonError(c, fiber.StatusBadRequest, "severity must be one of low, medium, high")
	}

	m := req.ToModel()
	if err := service.Create(reqCtx(c), ctl.DB, m); err != nil {
		log.Printf("[ERROR] create alert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create alert")
	}
	return helper.JsonCreated(c, m.ID, "Alert created")
}

// PUT /api/alerts/:id/acknowledge
func (ctl *AlertController) Acknowledge(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Acknowledge(reqCtx(c), ctl.DB, id); err != nil {
		return writeError(c, err, "Failed to acknowledge alert")
	}
	return helper.JsonOK(c, "Alert acknowledged")
}

// DELETE /api/alerts/:id
func (ctl *AlertController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Delete(reqCtx(c), ctl.DB, id); err != nil {
		return writeError(c, err, "Failed to delete alert")
	}
	return helper.JsonOK(c, "Alert deleted")
}

func writeError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, service.ErrAlertNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Alert not found")
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
