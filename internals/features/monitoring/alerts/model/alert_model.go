package model

import (
	"time"

	examModel "invigileye_backend/internals/features/exams/exams/model"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

const (
	AlertTypeSuspicious = "suspicious"
	AlertTypeCheating   = "cheating"
)

// AlertModel rows are append-only except for the acknowledged flag.
type AlertModel struct {
	ID           uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExamID       *uint     `json:"exam_id" gorm:"column:exam_id;index:idx_alerts_exam"`
	StudentID    *string   `json:"student_id" gorm:"column:student_id;type:text"`
	ExamTitle    *string   `json:"exam_title" gorm:"column:exam_title;type:text"`
	Type         string    `json:"type" gorm:"column:type;type:text;not null"`
	Description  string    `json:"description" gorm:"column:description;type:text;not null;default:''"`
	Severity     string    `json:"severity" gorm:"column:severity;type:text;not null;default:medium"`
	SnapshotURL  *string   `json:"snapshot_url" gorm:"column:snapshot_url;type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	Acknowledged bool      `json:"acknowledged" gorm:"column:acknowledged;not null;default:false"`

	Exam *examModel.ExamModel `json:"-" gorm:"foreignKey:ExamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AlertModel) TableName() string { return "alerts" }

func IsValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}
