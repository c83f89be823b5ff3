package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/reports/controller"
	authMw "invigileye_backend/internals/middlewares/auth"
)

// ReportRoutes: /api/reports
func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	g := r.Group("/reports", authMw.OnlyRolesSlice(constants.RoleErrorAdmin("reports"), constants.AdminOnly))
	g.Get("/summary", ctl.Summary)
	g.Get("/exam/:examId", ctl.Exam)
	g.Get("/exam/:examId/attendance.csv", ctl.AttendanceCSV)
}
