package model

import (
	"time"

	examModel "invigileye_backend/internals/features/exams/exams/model"

	"gorm.io/datatypes"
)

const (
	RequestTypeMaterial = "material"
	RequestTypeUMC      = "umc"
	RequestTypeIT       = "it"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusResolved = "resolved"
)

// RequestModel maps the requests table. description keeps the human readable text,
// payload keeps the structured variant.
type RequestModel struct {
	ID          uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExamID      *uint          `json:"exam_id" gorm:"column:exam_id;index:idx_requests_exam"`
	Type        string         `json:"type" gorm:"column:type;type:text;not null"`
	Description string         `json:"description" gorm:"column:description;type:text;not null;default:''"`
	Payload     datatypes.JSON `json:"-" gorm:"column:payload;type:json"`
	Status      string         `json:"status" gorm:"column:status;type:text;not null;default:pending"`
	CreatedAt   time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	ResolvedAt  *time.Time     `json:"resolved_at" gorm:"column:resolved_at"`

	Exam *examModel.ExamModel `json:"-" gorm:"foreignKey:ExamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (RequestModel) TableName() string { return "requests" }

func IsValidRequestType(t string) bool {
	switch t {
	case RequestTypeMaterial, RequestTypeUMC, RequestTypeIT:
		return true
	}
	return false
}

func IsValidRequestStatus(s string) bool {
	return s == RequestStatusPending || s == RequestStatusResolved
}
