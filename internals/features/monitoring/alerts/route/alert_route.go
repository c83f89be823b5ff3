package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/monitoring/alerts/controller"
	authMw "invigileye_backend/internals/middlewares/auth"
)

// AlertRoutes: /api/alerts
func AlertRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAlertController(db)
	staff := authMw.OnlyRolesSlice(constants.RoleErrorStaff("alerts"), constants.AllRoles)

	g := r.Group("/alerts")
	g.Get("/", ctl.List)
	g.Get("/exam/:examId", ctl.ListByExam)
	g.Post("/", staff, ctl.Create)
	g.Put("/:id/acknowledge", staff, ctl.Acknowledge)
	g.Delete("/:id", staff, ctl.Delete)
}
