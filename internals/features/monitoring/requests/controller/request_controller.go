package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestDTO "invigileye_backend/internals/features/monitoring/requests/dto"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	"invigileye_backend/internals/features/monitoring/requests/service"
	helper "invigileye_backend/internals/helpers"
)

type RequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Now      func() time.Time
}

func NewRequestController(db *gorm.DB, v *validator.Validate) *RequestController {
	return &RequestController{DB: db, Validate: v, Now: time.Now}
}

func (ctl *RequestController) ensureValidator() {
	if ctl.Validate == nil {
		ctl.Validate = validator.New()
	}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// GET /api/requests
func (ctl *RequestController) List(c *fiber.Ctx) error {
	rows, err := service.List(reqCtx(c), ctl.DB)
	if err != nil {
		log.Printf("[ERROR] list requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, requestDTO.FromRows(rows))
}

// GET /api/requests/exam/:examId
func (ctl *RequestController) ListByExam(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListByExam(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, requestDTO.FromModels(rows))
}

// GET /api/requests/:id
func (ctl *RequestController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.Get(reqCtx(c), ctl.DB, id)
	if err != nil {
		return ctl.writeError(c, err, "Database error")
	}
	return c.JSON(requestDTO.FromModel(m))
}

// POST /api/requests
func (ctl *RequestController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req requestDTO.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	m, err := service.BuildRequest(ctl.Validate, &req)
	if err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return helper.ValidationError(c, err)
		}
		return ctl.writeError(c, err, "Failed to create request")
	}

	if err := service.Create(reqCtx(c), ctl.DB, m); err != nil {
		log.Printf("[ERROR] create request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create request")
	}
	return helper.JsonCreated(c, m.ID, "Request created")
}

// PUT /api/requests/:id
func (ctl *RequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req requestDTO.UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if !requestModel.IsValidRequestStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "status must be pending or resolved")
	}

	if err := service.UpdateStatus(reqCtx(c), ctl.DB, id, req.Status, ctl.Now()); err != nil {
		return ctl.writeError(c, err, "Failed to update request")
	}
	return helper.JsonOK(c, "Request updated")
}

// DELETE /api/requests/:id
func (ctl *RequestController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Delete(reqCtx(c), ctl.DB, id); err != nil {
		return ctl.writeError(c, err, "Failed to delete request")
	}
	return helper.JsonOK(c, "Request deleted")
}

func (ctl *RequestController) writeError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Request not found")
	case errors.As(err, &fe):
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
