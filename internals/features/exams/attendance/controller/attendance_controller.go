package controller

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "invigileye_backend/internals/features/exams/attendance/dto"
	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	"invigileye_backend/internals/features/exams/attendance/service"
	helper "invigileye_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
	// Now is replaceable in tests.
	Now func() time.Time
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Now: time.Now}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// GET /api/attendance/exam/:examId
func (ctl *AttendanceController) ListByExam(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return ctl.list(c, examID)
}

// GET /api/attendance?exam_id=
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	examID, ok, err := helper.ParseIDQuery(c, "exam_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id is required")
	}
	return ctl.list(c, examID)
}

func (ctl *AttendanceController) list(c *fiber.Ctx, examID uint) error {
	rows, err := service.ListByExam(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// POST /api/attendance
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if !req.HasRequired() {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_id, roll_number, and status are required")
	}
	if !attendanceModel.IsValidAttendanceStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "status must be present or absent")
	}

	n, err := service.MarkOne(reqCtx(c), ctl.DB, &req, ctl.Now())
	if err != nil {
		log.Printf("[ERROR] mark attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonOK(c, "Attendance updated")
}

// POST /api/attendance/bulk
func (ctl *AttendanceController) MarkBulk(c *fiber.Ctx) error {
	var req attendanceDTO.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Records array is required")
	}
	if req.Records == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Records array is required")
	}

	records, bad := req.Decode()
	if bad > 0 {
		log.Printf("[WARN] bulk attendance: skipped %d malformed records", bad)
	}

	n, err := service.MarkBulk(reqCtx(c), ctl.DB, records, ctl.Now())
	if err != nil {
		log.Printf("[ERROR] bulk attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark bulk attendance")
	}
	return helper.JsonSuccess(c, fiber.StatusOK, fiber.Map{
		"message": "Bulk attendance updated: " + strconv.FormatInt(n, 10) + " records",
		"count":   n,
	})
}

// GET /api/attendance/exam/:examId/summary
func (ctl *AttendanceController) Summary(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := service.Summary(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(out)
}
