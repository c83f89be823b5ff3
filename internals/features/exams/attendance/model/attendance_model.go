package model

import (
	"time"

	examModel "invigileye_backend/internals/features/exams/exams/model"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceModel holds one row per (exam_id, roll_number). Rows are seeded as absent by
// roster ingestion and only updated afterwards.
type AttendanceModel struct {
	ID          uint       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ExamID      uint       `json:"exam_id" gorm:"column:exam_id;not null"`
	RollNumber  string     `json:"roll_number" gorm:"column:roll_number;type:text;not null"`
	Name        string     `json:"name" gorm:"column:name;type:text;not null"`
	ImageURL    *string    `json:"image_url" gorm:"column:image_url;type:text"`
	Status      string     `json:"status" gorm:"column:status;type:text;not null;default:absent"`
	SnapshotURL *string    `json:"snapshot_url" gorm:"column:snapshot_url;type:text"`
	MarkedAt    *time.Time `json:"marked_at" gorm:"column:marked_at"`

	Exam *examModel.ExamModel `json:"-" gorm:"foreignKey:ExamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func IsValidAttendanceStatus(s string) bool {
	return s == AttendancePresent || s == AttendanceAbsent
}
