package model

import (
	"time"
)

const (
	ExamStatusScheduled = "scheduled"
	ExamStatusCompleted = "completed"
)

// ExamModel maps the exams table.
// exam_date is stored as "YYYY-MM-DD" and exam_time/end_time as zero-padded "HH:MM",
// so string comparison orders them chronologically.
type ExamModel struct {
	ID               uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title            string    `json:"title" gorm:"column:title;type:text;not null"`
	Department       *string   `json:"department" gorm:"column:department;type:text"`
	Venue            string    `json:"venue" gorm:"column:venue;type:text;not null"`
	ExamDate         string    `json:"exam_date" gorm:"column:exam_date;type:text;not null;index:idx_exams_date"`
	ExamTime         string    `json:"exam_time" gorm:"column:exam_time;type:text;not null"`
	EndTime          *string   `json:"end_time" gorm:"column:end_time;type:text"`
	Section          *string   `json:"section" gorm:"column:section;type:text"`
	InvigilatorEmail *string   `json:"invigilator_email" gorm:"column:invigilator_email;type:text;index:idx_exams_invigilator"`
	Status           string    `json:"status" gorm:"column:status;type:text;not null;default:scheduled"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ExamModel) TableName() string { return "exams" }

func (m ExamModel) IsCompleted() bool { return m.Status == ExamStatusCompleted }

// SectionLabel renders " (Section A)" for conflict messages, or "" without a section.
func (m ExamModel) SectionLabel() string {
	if m.Section == nil || *m.Section == "" {
		return ""
	}
	return " (Section " + *m.Section + ")"
}
