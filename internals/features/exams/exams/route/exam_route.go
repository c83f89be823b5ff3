package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/exams/exams/controller"
	authMw "invigileye_backend/internals/middlewares/auth"
)

// ExamRoutes: /api/exams
func ExamRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamController(db, validator.New())
	adminOnly := authMw.OnlyRolesSlice(constants.RoleErrorAdmin("exam management"), constants.AdminOnly)

	g := r.Group("/exams")
	g.Get("/", ctl.List)
	g.Get("/invigilator/:email", ctl.ByInvigilator)
	g.Get("/invigilator/:email/ongoing", ctl.Ongoing)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/students", ctl.Students)

	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
	g.Post("/:id/roster", adminOnly, ctl.UploadRoster)

	g.Post("/:id/start", ctl.Start)
	g.Post("/:id/end", ctl.End)
}
