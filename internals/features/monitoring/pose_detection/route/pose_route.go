package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/configs"
	"invigileye_backend/internals/features/monitoring/pose_detection/controller"
	"invigileye_backend/internals/middlewares"
)

// PoseDetectionRoutes: /api/pose-detection. Public: the camera client carries no
// token and <img> tags cannot send one.
func PoseDetectionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPoseController(db, configs.SnapshotDir)

	g := r.Group("/pose-detection")
	g.Post("/alert", middlewares.PoseIngestRateLimiter(), ctl.ReceiveAlert)
	g.Get("/alerts/:examId", ctl.Alerts)
	g.Get("/stats/:examId", ctl.Stats)
	g.Get("/snapshots", ctl.Snapshots)
	g.Get("/snapshot/:filename", ctl.Snapshot)
}
