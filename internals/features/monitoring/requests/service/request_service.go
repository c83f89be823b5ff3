package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestDTO "invigileye_backend/internals/features/monitoring/requests/dto"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
)

var ErrRequestNotFound = errors.New("request not found")

const joinedSelect = `r.id, r.exam_id, r.type, r.description, r.payload, r.status, r.created_at, r.resolved_at,
	e.title AS exam_title, e.venue AS exam_venue, e.section AS exam_section,
	e.exam_date, e.exam_time, e.end_time, e.department AS exam_department, e.invigilator_email`

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("requests AS r").
		Select(joinedSelect).
		Joins("LEFT JOIN exams e ON e.id = r.exam_id")
}

// BuildRequest validates the body and renders it into a row. A structured payload
// fills the description when none was sent.
// Payload field errors come back as validator.ValidationErrors.
func BuildRequest(v *validator.Validate, req *requestDTO.CreateRequestRequest) (*requestModel.RequestModel, error) {
	if req.Type == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Type is required")
	}
	if !requestModel.IsValidRequestType(req.Type) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "type must be one of material, umc, it")
	}

	m := &requestModel.RequestModel{
		ExamID:      req.ExamID.Ptr(),
		Type:        req.Type,
		Description: req.Description,
		Status:      requestModel.RequestStatusPending,
	}

	if req.HasPayload() {
		p, err := requestModel.DecodePayloadAs(req.Type, req.Payload)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid payload for type "+req.Type)
		}
		if err := v.Struct(p); err != nil {
			return nil, err
		}
		raw, err := requestModel.EncodePayload(p)
		if err != nil {
			return nil, err
		}
		m.Payload = raw
		if m.Description == "" {
			m.Description = p.Describe()
		}
	}
	return m, nil
}

func Create(ctx context.Context, db *gorm.DB, m *requestModel.RequestModel) error {
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Printf("[INFO] request %d (%s) raised for exam %v", m.ID, m.Type, examLabel(m.ExamID))
	return nil
}

func examLabel(id *uint) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprint(*id)
}

func List(ctx context.Context, db *gorm.DB) ([]requestDTO.RequestRow, error) {
	var rows []requestDTO.RequestRow
	err := joined(db.WithContext(ctx)).
		Order("r.created_at DESC, r.id DESC").
		Scan(&rows).Error
	return rows, err
}

func ListByExam(ctx context.Context, db *gorm.DB, examID uint) ([]requestModel.RequestModel, error) {
	var rows []requestModel.RequestModel
	err := db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func Get(ctx context.Context, db *gorm.DB, id uint) (*requestModel.RequestModel, error) {
	var m requestModel.RequestModel
	if err := db.WithContext(ctx).Take(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateStatus: resolved stamps resolved_at, pending clears it.
func UpdateStatus(ctx context.Context, db *gorm.DB, id uint, status string, now time.Time) error {
	var resolvedAt *time.Time
	if status == requestModel.RequestStatusResolved {
		resolvedAt = &now
	}
	res := db.WithContext(ctx).
		Model(&requestModel.RequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"resolved_at": resolvedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&requestModel.RequestModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
