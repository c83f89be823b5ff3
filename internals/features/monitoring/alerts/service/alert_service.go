package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"

	alertDTO "invigileye_backend/internals/features/monitoring/alerts/dto"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
)

var ErrAlertNotFound = errors.New("alert not found")

// ListRecent returns the latest alerts joined with their exam.
func ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]alertDTO.AlertRow, error) {
	var rows []alertDTO.AlertRow
	err := db.WithContext(ctx).
		Table("alerts AS a").
		Select(`a.id, a.exam_id, a.student_id, COALESCE(a.exam_title, e.title) AS exam_title, e.venue,
			a.type, a.description, a.severity, a.snapshot_url, a.created_at, a.acknowledged`).
		Joins("LEFT JOIN exams e ON e.id = a.exam_id").
		Order("a.created_at DESC, a.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ListByExam returns the exam's alerts, newest first. With types set only those
// alert types are returned.
func ListByExam(ctx context.Context, db *gorm.DB, examID uint, types ...string) ([]alertModel.AlertModel, error) {
	q := db.WithContext(ctx).Where("exam_id = ?", examID)
	if len(types) > 0 {
		q = q.Where("type IN ?", types)
	}
	var rows []alertModel.AlertModel
	err := q.Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func Create(ctx context.Context, db *gorm.DB, m *alertModel.AlertModel) error {
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	if m.Severity == alertModel.SeverityHigh {
		exam := "-"
		if m.ExamID != nil {
			exam = strconv.FormatUint(uint64(*m.ExamID), 10)
		}
		log.Printf("[WARN] high severity alert %d (%s) exam=%s", m.ID, m.Type, exam)
	}
	return nil
}

// Acknowledge sets the flag; there is no way back.
func Acknowledge(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).
		Model(&alertModel.AlertModel{}).
		Where("id = ?", id).
		Update("acknowledged", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&alertModel.AlertModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// Stats counts the exam's alerts of the given types.
func Stats(ctx context.Context, db *gorm.DB, examID uint, types ...string) (alertDTO.AlertStats, error) {
	var out alertDTO.AlertStats
	q := db.WithContext(ctx).
		Model(&alertModel.AlertModel{}).
		Select(`COUNT(*) AS total_alerts,
			COALESCE(SUM(CASE WHEN severity = 'high' THEN 1 ELSE 0 END), 0) AS high_severity,
			COALESCE(SUM(CASE WHEN severity = 'medium' THEN 1 ELSE 0 END), 0) AS medium_severity,
			COUNT(DISTINCT student_id) AS students_flagged`).
		Where("exam_id = ?", examID)
	if len(types) > 0 {
		q = q.Where("type IN ?", types)
	}
	err := q.Scan(&out).Error
	return out, err
}
