package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	attendanceDTO "invigileye_backend/internals/features/exams/attendance/dto"
	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
)

func ListByExam(ctx context.Context, db *gorm.DB, examID uint) ([]attendanceModel.AttendanceModel, error) {
	var rows []attendanceModel.AttendanceModel
	err := db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("roll_number ASC").
		Find(&rows).Error
	return rows, err
}

// Mark updates the (exam_id, roll_number) row and returns how many rows changed
// (0 when the pair was never ingested). Caller validates the request first.
func Mark(tx *gorm.DB, r *attendanceDTO.MarkAttendanceRequest, at time.Time) (int64, error) {
	res := tx.Model(&attendanceModel.AttendanceModel{}).
		Where("exam_id = ? AND roll_number = ?", uint(r.ExamID), r.RollNumber.String()).
		Updates(map[string]any{
			"status":       r.Status,
			"snapshot_url": r.SnapshotURL,
			"marked_at":    at,
		})
	return res.RowsAffected, res.Error
}

// MarkOne is Mark on its own.
func MarkOne(ctx context.Context, db *gorm.DB, r *attendanceDTO.MarkAttendanceRequest, at time.Time) (int64, error) {
	return Mark(db.WithContext(ctx), r, at)
}

// MarkBulk applies every record with the same timestamp. Records that are incomplete,
// carry an unknown status or match no row add nothing; they never stop the batch.
func MarkBulk(ctx context.Context, db *gorm.DB, records []attendanceDTO.MarkAttendanceRequest, at time.Time) (int64, error) {
	var updated int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			r := &records[i]
			r.Normalize()
			if !r.HasRequired() || !attendanceModel.IsValidAttendanceStatus(r.Status) {
				continue
			}
			n, err := Mark(tx, r, at)
			if err != nil {
				return err
			}
			updated += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func Summary(ctx context.Context, db *gorm.DB, examID uint) (attendanceDTO.AttendanceSummary, error) {
	out := attendanceDTO.AttendanceSummary{ExamID: examID}
	err := db.WithContext(ctx).
		Model(&attendanceModel.AttendanceModel{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS absent`,
			attendanceModel.AttendancePresent, attendanceModel.AttendanceAbsent).
		Where("exam_id = ?", examID).
		Scan(&out).Error
	out.ExamID = examID
	return out, err
}
