package dto

import (
	examModel "invigileye_backend/internals/features/exams/exams/model"
)

type AttendanceCounts struct {
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}

// ReportExam is the exam plus the invigilator's display name.
type ReportExam struct {
	examModel.ExamModel
	InvigilatorName *string `json:"invigilator_name"`
}

type ExamReport struct {
	Exam          ReportExam       `json:"exam"`
	Attendance    AttendanceCounts `json:"attendance"`
	AlertsCount   int64            `json:"alerts_count"`
	RequestsCount int64            `json:"requests_count"`
}

// SummaryRow is one line of GET /api/reports/summary.
type SummaryRow struct {
	ID              uint    `json:"id" gorm:"column:id"`
	Title           string  `json:"title" gorm:"column:title"`
	Venue           string  `json:"venue" gorm:"column:venue"`
	ExamDate        string  `json:"exam_date" gorm:"column:exam_date"`
	Status          string  `json:"status" gorm:"column:status"`
	InvigilatorName *string `json:"invigilator_name" gorm:"column:invigilator_name"`
	TotalStudents   int64   `json:"total_students" gorm:"column:total_students"`
	PresentCount    int64   `json:"present_count" gorm:"column:present_count"`
	AlertsCount     int64   `json:"alerts_count" gorm:"column:alerts_count"`
	RequestsCount   int64   `json:"requests_count" gorm:"column:requests_count"`
}
