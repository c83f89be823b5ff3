package details

import (
	reportRoute "invigileye_backend/internals/features/reports/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	reportRoute.ReportRoutes(r, db)
}
