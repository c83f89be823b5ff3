package controller

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/configs"
	examDTO "invigileye_backend/internals/features/exams/exams/dto"
	"invigileye_backend/internals/features/exams/exams/service"
	helper "invigileye_backend/internals/helpers"
	"invigileye_backend/internals/helpers/dbtime"
)

const rosterField = "studentCsv"

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB, v *validator.Validate) *ExamController {
	return &ExamController{DB: db, Validate: v}
}

func (ctl *ExamController) ensureValidator() {
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

/* ================= Handlers ================= */

// GET /api/exams
func (ctl *ExamController) List(c *fiber.Ctx) error {
	rows, err := service.ListExams(reqCtx(c), ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// GET /api/exams/:id
func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.GetExam(reqCtx(c), ctl.DB, id)
	if err != nil {
		return ctl.writeError(c, err, "Database error")
	}
	return c.JSON(m)
}

// POST /api/exams (multipart with optional studentCsv, or JSON)
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req examDTO.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if !req.HasRequired() {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.NormalizeSchedule(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	roster, err := ctl.readRoster(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	var rows []service.RosterRow
	if roster != nil {
		rows = roster.Rows
	}
	added, err := service.CreateExam(reqCtx(c), ctl.DB, m, rows)
	if err != nil {
		return ctl.writeError(c, err, "Failed to create exam")
	}

	msg := "Exam created"
	if roster != nil {
		msg = "Exam created with " + strconv.Itoa(added) + " students"
	}
	return helper.JsonSuccess(c, fiber.StatusCreated, fiber.Map{
		"id":       m.ID,
		"message":  msg,
		"students": added,
	})
}

// PUT /api/exams/:id
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req examDTO.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.UpdateExam(reqCtx(c), ctl.DB, id, &req)
	if err != nil {
		return ctl.writeError(c, err, "Failed to update exam")
	}
	return helper.JsonSuccess(c, fiber.StatusOK, fiber.Map{
		"message": "Exam updated",
		"exam":    m,
	})
}

// DELETE /api/exams/:id
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.DeleteExam(reqCtx(c), ctl.DB, id); err != nil {
		return ctl.writeError(c, err, "Failed to delete exam")
	}
	log.Printf("[INFO] exam %d deleted", id)
	return helper.JsonOK(c, "Exam deleted")
}

// POST /api/exams/:id/start keeps the status as is.
func (ctl *ExamController) Start(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := service.GetExam(reqCtx(c), ctl.DB, id); err != nil {
		return ctl.writeError(c, err, "Failed to start exam")
	}
	return helper.JsonOK(c, "Exam can be started")
}

// POST /api/exams/:id/end
func (ctl *ExamController) End(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.EndExam(reqCtx(c), ctl.DB, id); err != nil {
		return ctl.writeError(c, err, "Failed to end exam")
	}
	return helper.JsonOK(c, "Exam completed")
}

// GET /api/exams/:id/students
func (ctl *ExamController) Students(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListStudents(reqCtx(c), ctl.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// POST /api/exams/:id/roster (multipart studentCsv)
func (ctl *ExamController) UploadRoster(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	roster, err := ctl.readRoster(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if roster == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "studentCsv file is required")
	}

	added, err := service.AddRoster(reqCtx(c), ctl.DB, id, roster.Rows)
	if err != nil {
		return ctl.writeError(c, err, "Failed to import roster")
	}
	return helper.JsonSuccess(c, fiber.StatusOK, fiber.Map{
		"message": "Roster imported: " + strconv.Itoa(added) + " students",
		"count":   added,
		"skipped": roster.Skipped + len(roster.Rows) - added,
	})
}

// GET /api/exams/invigilator/:email
func (ctl *ExamController) ByInvigilator(c *fiber.Ctx) error {
	email := helper.UnescapedParam(c, "email")
	rows, err := service.ListExamsByInvigilator(reqCtx(c), ctl.DB, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// GET /api/exams/invigilator/:email/ongoing
func (ctl *ExamController) Ongoing(c *fiber.Ctx) error {
	email := helper.UnescapedParam(c, "email")
	now := dbtime.NowLocal()

	rows, err := service.FindOngoingForInvigilator(reqCtx(c), ctl.DB, email, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}

	resp := examDTO.OngoingResponse{
		Ongoing: len(rows) > 0,
		Exams:   rows,
		Now:     now.Format("2006-01-02 15:04"),
	}
	if len(rows) > 0 {
		resp.Exam = &rows[0]
	}
	return c.JSON(resp)
}

/* ================= helpers ================= */

// readRoster saves the studentCsv upload, parses it and removes the file again.
// (nil, nil) when the request carries no roster.
func (ctl *ExamController) readRoster(c *fiber.Ctx) (*service.RosterResult, error) {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if !strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	files, _ := helper.CollectUploadFiles(form, &helper.CollectOptions{
		FileFieldCandidates: []string{rosterField},
	})
	if len(files) == 0 {
		return nil, nil
	}

	path, err := helper.SaveUpload(files[0], helper.UploadOptions{
		Dir:           configs.UploadDir,
		MaxBytes:      int64(configs.MaxUploadMB) * 1024 * 1024,
		AllowedExts:   []string{".csv"},
		AllowedMIMEs:  []string{"text/csv"},
		RejectMessage: "Only CSV files are allowed",
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		log.Printf("[ERROR] save roster upload: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to store upload")
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] remove upload %s: %v", path, err)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to read upload")
	}
	defer f.Close()

	res, err := service.ParseRoster(f)
	if err != nil {
		log.Printf("[ERROR] parse roster: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to parse CSV")
	}
	if res.Skipped > 0 {
		log.Printf("[INFO] roster: %d rows accepted, %d skipped", len(res.Rows), res.Skipped)
	}
	return &res, nil
}

func (ctl *ExamController) writeError(c *fiber.Ctx, err error, fallback string) error {
	var (
		ce *service.ConflictError
		se *examDTO.ScheduleError
		fe *fiber.Error
	)
	switch {
	case errors.As(err, &ce):
		return helper.JsonConflict(c, ce.Title(), ce.Message, examDTO.ToConflictExam(&ce.Conflict))
	case errors.As(err, &se):
		return helper.JsonError(c, fiber.StatusBadRequest, se.Msg)
	case errors.Is(err, service.ErrExamNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	case errors.Is(err, service.ErrInvalidStatusMovement):
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam status can only move from scheduled to completed")
	case errors.As(err, &fe):
		return helper.JsonError(c, fe.Code, fe.Message)
	default:
		log.Printf("[ERROR] %s: %v", fallback, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
