package service

import (
	"context"
	"encoding/csv"
	"io"

	"gorm.io/gorm"

	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	attendanceService "invigileye_backend/internals/features/exams/attendance/service"
	examService "invigileye_backend/internals/features/exams/exams/service"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	reportDTO "invigileye_backend/internals/features/reports/dto"
	userModel "invigileye_backend/internals/features/users/user/model"
)

// ExamReport gathers the exam with its attendance, alert and request counts.
// Returns examService.ErrExamNotFound for an unknown id.
func ExamReport(ctx context.Context, db *gorm.DB, examID uint) (*reportDTO.ExamReport, error) {
	exam, err := examService.GetExam(ctx, db, examID)
	if err != nil {
		return nil, err
	}
	tx := db.WithContext(ctx)

	out := &reportDTO.ExamReport{Exam: reportDTO.ReportExam{ExamModel: *exam}}
	if exam.InvigilatorEmail != nil {
		var u userModel.UserModel
		res := tx.Where("email = ?", *exam.InvigilatorEmail).Limit(1).Find(&u)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			out.Exam.InvigilatorName = u.FullName
		}
	}

	sum, err := attendanceService.Summary(ctx, db, examID)
	if err != nil {
		return nil, err
	}
	out.Attendance = reportDTO.AttendanceCounts{Total: sum.Total, Present: sum.Present, Absent: sum.Absent}

	if err := tx.Model(&alertModel.AlertModel{}).Where("exam_id = ?", examID).Count(&out.AlertsCount).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&requestModel.RequestModel{}).Where("exam_id = ?", examID).Count(&out.RequestsCount).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Summary lists every exam, newest first, with its totals.
func Summary(ctx context.Context, db *gorm.DB) ([]reportDTO.SummaryRow, error) {
	var rows []reportDTO.SummaryRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			e.id, e.title, e.venue, e.exam_date, e.status,
			(SELECT u.full_name FROM users u WHERE u.email = e.invigilator_email LIMIT 1) AS invigilator_name,
			(SELECT COUNT(*) FROM students s WHERE s.exam_id = e.id) AS total_students,
			(SELECT COUNT(*) FROM attendance a WHERE a.exam_id = e.id AND a.status = ?) AS present_count,
			(SELECT COUNT(*) FROM alerts al WHERE al.exam_id = e.id) AS alerts_count,
			(SELECT COUNT(*) FROM requests r WHERE r.exam_id = e.id) AS requests_count
		FROM exams e
		ORDER BY e.created_at DESC, e.id DESC
	`, attendanceModel.AttendancePresent).Scan(&rows).Error
	return rows, err
}

var attendanceCSVHeader = []string{"roll_number", "name", "status", "marked_at", "snapshot_url"}

// WriteAttendanceCSV writes the exam's attendance sheet ordered by roll number.
func WriteAttendanceCSV(ctx context.Context, db *gorm.DB, examID uint, w io.Writer) error {
	if _, err := examService.GetExam(ctx, db, examID); err != nil {
		return err
	}
	rows, err := attendanceService.ListByExam(ctx, db, examID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(attendanceCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		var markedAt, snap string
		if r.MarkedAt != nil {
			markedAt = r.MarkedAt.Format("2006-01-02 15:04:05")
		}
		if r.SnapshotURL != nil {
			snap = *r.SnapshotURL
		}
		if err := cw.Write([]string{r.RollNumber, r.Name, r.Status, markedAt, snap}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
