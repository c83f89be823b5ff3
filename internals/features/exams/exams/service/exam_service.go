package service

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examDTO "invigileye_backend/internals/features/exams/exams/dto"
	examModel "invigileye_backend/internals/features/exams/exams/model"
)

var (
	ErrExamNotFound          = errors.New("exam not found")
	ErrInvalidStatusMovement = errors.New("exam status can only move from scheduled to completed")
)

// CreateExam admits, inserts and ingests the roster in one transaction; nothing is
// kept when any step fails. m gets its ID; the number of students added is returned.
func CreateExam(ctx context.Context, db *gorm.DB, m *examModel.ExamModel, roster []RosterRow) (int, error) {
	var added int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := CheckAdmission(tx, SlotOf(m), 0); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			if IsUniqueViolation(err) {
				return slotTakenError(tx, m, 0, err)
			}
			return err
		}
		n, err := IngestRoster(tx, m.ID, roster)
		if err != nil {
			return err
		}
		added = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Printf("[INFO] exam %d %q created with %d students", m.ID, m.Title, added)
	return added, nil
}

// slotTakenError: the index caught a slot the check did not, report it as a conflict
// when the culprit can be found.
func slotTakenError(tx *gorm.DB, m *examModel.ExamModel, excludeID uint, cause error) error {
	if err := CheckAdmission(tx, SlotOf(m), excludeID); err != nil {
		return err
	}
	return fiber.NewError(fiber.StatusConflict, "Exam slot already taken: "+cause.Error())
}

// UpdateExam applies a partial update. Slot changes go through admission again
// (excluding the exam itself); status may only go scheduled → completed.
func UpdateExam(ctx context.Context, db *gorm.DB, id uint, req *examDTO.UpdateExamRequest) (*examModel.ExamModel, error) {
	var out examModel.ExamModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&out, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExamNotFound
			}
			return err
		}

		if req.Status != nil && *req.Status != out.Status {
			if out.IsCompleted() || *req.Status != examModel.ExamStatusCompleted {
				return ErrInvalidStatusMovement
			}
			out.Status = *req.Status
		}

		if err := req.ApplyTo(&out); err != nil {
			return err
		}
		if req.TouchesSlot() {
			if err := CheckAdmission(tx, SlotOf(&out), out.ID); err != nil {
				return err
			}
		}

		if err := tx.Save(&out).Error; err != nil {
			if IsUniqueViolation(err) {
				return slotTakenError(tx, &out, out.ID, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EndExam marks an exam completed. Ending a completed exam is a no-op.
func EndExam(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).
		Model(&examModel.ExamModel{}).
		Where("id = ?", id).
		Update("status", examModel.ExamStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExamNotFound
	}
	return nil
}

// DeleteExam removes the exam; students, attendance, requests and alerts cascade.
func DeleteExam(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&examModel.ExamModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrExamNotFound
	}
	return nil
}

func GetExam(ctx context.Context, db *gorm.DB, id uint) (*examModel.ExamModel, error) {
	var m examModel.ExamModel
	if err := db.WithContext(ctx).Take(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return &m, nil
}

func ListExams(ctx context.Context, db *gorm.DB) ([]examModel.ExamModel, error) {
	var rows []examModel.ExamModel
	err := db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error
	return rows, err
}

func ListExamsByInvigilator(ctx context.Context, db *gorm.DB, email string) ([]examModel.ExamModel, error) {
	var rows []examModel.ExamModel
	err := db.WithContext(ctx).
		Where("invigilator_email = ?", email).
		Order("exam_date DESC, exam_time DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func ListStudents(ctx context.Context, db *gorm.DB, examID uint) ([]examModel.StudentModel, error) {
	var rows []examModel.StudentModel
	err := db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("roll_number ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// AddRoster ingests a roster into an existing exam, all rows or none.
func AddRoster(ctx context.Context, db *gorm.DB, examID uint, roster []RosterRow) (int, error) {
	var added int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&examModel.ExamModel{}).Where("id = ?", examID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return ErrExamNotFound
		}
		n, err := IngestRoster(tx, examID, roster)
		added = n
		return err
	})
	return added, err
}
