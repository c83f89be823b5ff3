package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/configs"
	authMiddleware "invigileye_backend/internals/middlewares/auth"
	routeDetails "invigileye_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts everything. Public routes are registered before the /api
// group so its auth middleware never runs for them.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PoseDetectionRoutes...")
	routeDetails.PoseDetectionRoutes(app.Group("/api"), db)

	// ===================== PROTECTED =====================
	// AUTH_ENFORCE=false keeps anonymous clients working; a bad token is still 401.
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:   configs.JWTSecret,
			Required: configs.AuthEnforce,
		}),
	)

	log.Println("[INFO] Mounting Exam routes...")
	routeDetails.ExamRoutes(api, db)

	log.Println("[INFO] Mounting Monitoring routes...")
	routeDetails.MonitoringRoutes(api, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportRoutes(api, db)
}
