package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"invigileye_backend/internals/constants"
	"invigileye_backend/internals/features/exams/attendance/controller"
	authMw "invigileye_backend/internals/middlewares/auth"
)

// AttendanceRoutes: /api/attendance
func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)
	staff := authMw.OnlyRolesSlice(constants.RoleErrorStaff("attendance marking"), constants.AllRoles)

	g := r.Group("/attendance")
	g.Get("/", ctl.List)
	g.Get("/exam/:examId", ctl.ListByExam)
	g.Get("/exam/:examId/summary", ctl.Summary)
	g.Post("/", staff, ctl.Mark)
	g.Post("/bulk", staff, ctl.MarkBulk)
}
