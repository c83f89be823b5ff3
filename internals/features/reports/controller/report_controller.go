package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examService "invigileye_backend/internals/features/exams/exams/service"
	"invigileye_backend/internals/features/reports/service"
	helper "invigileye_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// GET /api/reports/exam/:examId
func (ctl *ReportController) Exam(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := service.ExamReport(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GET /api/reports/summary
func (ctl *ReportController) Summary(c *fiber.Ctx) error {
	rows, err := service.Summary(reqCtx(c), ctl.DB)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, rows)
}

// GET /api/reports/exam/:examId/attendance.csv
func (ctl *ReportController) AttendanceCSV(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var buf bytes.Buffer
	if err := service.WriteAttendanceCSV(reqCtx(c), ctl.DB, examID, &buf); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="exam-%d-attendance.csv"`, examID))
	return c.Send(buf.Bytes())
}

func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, examService.ErrExamNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	log.Printf("[ERROR] reports: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
}
