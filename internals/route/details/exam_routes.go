package details

import (
	attendanceRoute "invigileye_backend/internals/features/exams/attendance/route"
	examRoute "invigileye_backend/internals/features/exams/exams/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExamRoutes: /api/exams + /api/attendance
func ExamRoutes(r fiber.Router, db *gorm.DB) {
	examRoute.ExamRoutes(r, db)
	attendanceRoute.AttendanceRoutes(r, db)
}
