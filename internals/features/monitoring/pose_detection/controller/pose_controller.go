package controller

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	poseDTO "invigileye_backend/internals/features/monitoring/pose_detection/dto"
	"invigileye_backend/internals/features/monitoring/pose_detection/service"
	helper "invigileye_backend/internals/helpers"
)

// maxThumbWidth caps ?w=.
const maxThumbWidth = 1920

type PoseController struct {
	DB          *gorm.DB
	SnapshotDir string
}

func NewPoseController(db *gorm.DB, snapshotDir string) *PoseController {
	return &PoseController{DB: db, SnapshotDir: snapshotDir}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// POST /api/pose-detection/alert
func (ctl *PoseController) ReceiveAlert(c *fiber.Ctx) error {
	var req poseDTO.PoseAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.StudentID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
	}

	m, err := service.StoreAlert(reqCtx(c), ctl.DB, &req)
	if err != nil {
		log.Printf("[ERROR] store pose alert: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store alert")
	}
	return helper.JsonSuccess(c, fiber.StatusOK, fiber.Map{
		"message":  "Alert received and stored",
		"alert_id": m.ID,
	})
}

// GET /api/pose-detection/alerts/:examId
func (ctl *PoseController) Alerts(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.ListAlerts(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return helper.JsonList(c, rows)
}

// GET /api/pose-detection/stats/:examId
func (ctl *PoseController) Stats(c *fiber.Ctx) error {
	examID, err := helper.ParseIDParam(c, "examId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := service.Stats(reqCtx(c), ctl.DB, examID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	return c.JSON(out)
}

// GET /api/pose-detection/snapshots
func (ctl *PoseController) Snapshots(c *fiber.Ctx) error {
	items, err := service.ListSnapshots(ctl.SnapshotDir)
	if err != nil {
		log.Printf("[ERROR] list snapshots: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list snapshots")
	}
	return helper.JsonList(c, items)
}

// GET /api/pose-detection/snapshot/:filename?w=
func (ctl *PoseController) Snapshot(c *fiber.Ctx) error {
	name := helper.UnescapedParam(c, "filename")
	p, err := service.ResolveSnapshot(ctl.SnapshotDir, name)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Snapshot not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read snapshot")
	}

	w, _ := strconv.Atoi(c.Query("w"))
	if w <= 0 {
		c.Set(fiber.HeaderContentType, constants.ImageContentType(name))
		return c.SendFile(p)
	}
	if w > maxThumbWidth {
		w = maxThumbWidth
	}

	all, err := os.ReadFile(p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read snapshot")
	}
	thumb, err := helper.ConvertToWebPThumbnail(all, name, w)
	if err != nil {
		log.Printf("[WARN] thumbnail %s: %v", name, err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Snapshot is not a readable image")
	}
	c.Set(fiber.HeaderContentType, constants.ImageContentType(".webp"))
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(thumb)
}
