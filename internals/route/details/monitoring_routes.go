package details

import (
	alertRoute "invigileye_backend/internals/features/monitoring/alerts/route"
	poseRoute "invigileye_backend/internals/features/monitoring/pose_detection/route"
	requestRoute "invigileye_backend/internals/features/monitoring/requests/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MonitoringRoutes: /api/requests + /api/alerts
func MonitoringRoutes(r fiber.Router, db *gorm.DB) {
	requestRoute.RequestRoutes(r, db)
	alertRoute.AlertRoutes(r, db)
}

// PoseDetectionRoutes: /api/pose-detection (public)
func PoseDetectionRoutes(r fiber.Router, db *gorm.DB) {
	poseRoute.PoseDetectionRoutes(r, db)
}
