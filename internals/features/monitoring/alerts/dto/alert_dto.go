package dto

import (
	"strings"
	"time"

	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	helper "invigileye_backend/internals/helpers"
)

type CreateAlertRequest struct {
	ExamID      helper.FlexUint `json:"exam_id"`
	StudentID   string          `json:"student_id"`
	ExamTitle   string          `json:"exam_title"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Severity    string          `json:"severity"`
	SnapshotURL string          `json:"snapshot_url"`
}

func (r *CreateAlertRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.ExamTitle = strings.TrimSpace(r.ExamTitle)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	r.Severity = strings.ToLower(strings.TrimSpace(r.Severity))
	r.SnapshotURL = strings.TrimSpace(r.SnapshotURL)
	if r.Severity == "" {
		r.Severity = alertModel.SeverityMedium
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *CreateAlertRequest) ToModel() *alertModel.AlertModel {
	return &alertModel.AlertModel{
		ExamID:      r.ExamID.Ptr(),
		StudentID:   optional(r.StudentID),
		ExamTitle:   optional(r.ExamTitle),
		Type:        r.Type,
		Description: r.Description,
		Severity:    r.Severity,
		SnapshotURL: optional(r.SnapshotURL),
	}
}

// AlertRow is an alert with its exam title and venue. exam_title prefers the
// stored copy, then the joined exam.
type AlertRow struct {
	ID           uint      `json:"id" gorm:"column:id"`
	ExamID       *uint     `json:"exam_id" gorm:"column:exam_id"`
	StudentID    *string   `json:"student_id" gorm:"column:student_id"`
	ExamTitle    *string   `json:"exam_title" gorm:"column:exam_title"`
	Venue        *string   `json:"venue" gorm:"column:venue"`
	Type         string    `json:"type" gorm:"column:type"`
	Description  string    `json:"description" gorm:"column:description"`
	Severity     string    `json:"severity" gorm:"column:severity"`
	SnapshotURL  *string   `json:"snapshot_url" gorm:"column:snapshot_url"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	Acknowledged bool      `json:"acknowledged" gorm:"column:acknowledged"`
}

// AlertStats backs the pose-detection stats endpoint.
type AlertStats struct {
	TotalAlerts     int64 `json:"total_alerts" gorm:"column:total_alerts"`
	HighSeverity    int64 `json:"high_severity" gorm:"column:high_severity"`
	MediumSeverity  int64 `json:"medium_severity" gorm:"column:medium_severity"`
	StudentsFlagged int64 `json:"students_flagged" gorm:"column:students_flagged"`
}
