package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/monitoring/requests/controller"
	authMw "invigileye_backend/internals/middlewares/auth"
)

// RequestRoutes: /api/requests
func RequestRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRequestController(db, validator.New())
	staff := authMw.OnlyRolesSlice(constants.RoleErrorStaff("requests"), constants.AllRoles)

	g := r.Group("/requests")
	g.Get("/", ctl.List)
	g.Get("/exam/:examId", ctl.ListByExam)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", staff, ctl.Create)
	g.Put("/:id", staff, ctl.UpdateStatus)
	g.Delete("/:id", staff, ctl.Delete)
}
