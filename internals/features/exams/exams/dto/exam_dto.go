package dto

import (
	"strings"

	examModel "invigileye_backend/internals/features/exams/exams/model"
	"invigileye_backend/internals/helpers/dbtime"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateExamRequest is bound from multipart form fields or a JSON body.
type CreateExamRequest struct {
	Title            string  `json:"title" form:"title" validate:"required,max=200"`
	Department       *string `json:"department" form:"department" validate:"omitempty,max=200"`
	Venue            string  `json:"venue" form:"venue" validate:"required,max=200"`
	ExamDate         string  `json:"exam_date" form:"exam_date" validate:"required"`
	ExamTime         string  `json:"exam_time" form:"exam_time" validate:"required"`
	EndTime          *string `json:"end_time" form:"end_time"`
	Section          *string `json:"section" form:"section" validate:"omitempty,max=50"`
	InvigilatorEmail *string `json:"invigilator_email" form:"invigilator_email" validate:"omitempty,email"`
}

// Normalize trims everything and turns blank optionals into nil.
func (r *CreateExamRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Venue = strings.TrimSpace(r.Venue)
	r.ExamDate = strings.TrimSpace(r.ExamDate)
	r.ExamTime = strings.TrimSpace(r.ExamTime)
	r.Department = trimPtr(r.Department)
	r.EndTime = trimPtr(r.EndTime)
	r.Section = trimPtr(r.Section)
	r.InvigilatorEmail = trimPtr(r.InvigilatorEmail)
}

// HasRequired: title, venue, exam_date and exam_time are all present.
func (r *CreateExamRequest) HasRequired() bool {
	return r.Title != "" && r.Venue != "" && r.ExamDate != "" && r.ExamTime != ""
}

// NormalizeSchedule checks the date and pads times to HH:MM.
func (r *CreateExamRequest) NormalizeSchedule() error {
	return normalizeSchedule(&r.ExamDate, &r.ExamTime, r.EndTime)
}

func (r *CreateExamRequest) ToModel() *examModel.ExamModel {
	return &examModel.ExamModel{
		Title:            r.Title,
		Department:       r.Department,
		Venue:            r.Venue,
		ExamDate:         r.ExamDate,
		ExamTime:         r.ExamTime,
		EndTime:          r.EndTime,
		Section:          r.Section,
		InvigilatorEmail: r.InvigilatorEmail,
		Status:           examModel.ExamStatusScheduled,
	}
}

// UpdateExamRequest: partial update, nil fields are left as they are.
type UpdateExamRequest struct {
	Title            *string `json:"title" validate:"omitempty,min=1,max=200"`
	Department       *string `json:"department" validate:"omitempty,max=200"`
	Venue            *string `json:"venue" validate:"omitempty,min=1,max=200"`
	ExamDate         *string `json:"exam_date"`
	ExamTime         *string `json:"exam_time"`
	EndTime          *string `json:"end_time"`
	Section          *string `json:"section" validate:"omitempty,max=50"`
	InvigilatorEmail *string `json:"invigilator_email" validate:"omitempty,email"`
	Status           *string `json:"status" validate:"omitempty,oneof=scheduled completed"`
}

func (r *UpdateExamRequest) Normalize() {
	for _, p := range []*string{r.Title, r.Venue, r.ExamDate, r.ExamTime, r.Status} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	if r.Status != nil {
		*r.Status = strings.ToLower(*r.Status)
	}
	// "" on these means clear.
	for _, p := range []*string{r.Department, r.EndTime, r.Section, r.InvigilatorEmail} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// TouchesSlot reports whether admission has to run again.
func (r *UpdateExamRequest) TouchesSlot() bool {
	return r.Title != nil || r.Venue != nil || r.ExamDate != nil || r.ExamTime != nil || r.Section != nil
}

// ApplyTo merges the request into m and re-normalizes the schedule.
func (r *UpdateExamRequest) ApplyTo(m *examModel.ExamModel) error {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Venue != nil {
		m.Venue = *r.Venue
	}
	if r.ExamDate != nil {
		m.ExamDate = *r.ExamDate
	}
	if r.ExamTime != nil {
		m.ExamTime = *r.ExamTime
	}
	if r.Department != nil {
		m.Department = emptyToNil(*r.Department)
	}
	if r.EndTime != nil {
		m.EndTime = emptyToNil(*r.EndTime)
	}
	if r.Section != nil {
		m.Section = emptyToNil(*r.Section)
	}
	if r.InvigilatorEmail != nil {
		m.InvigilatorEmail = emptyToNil(*r.InvigilatorEmail)
	}
	return normalizeSchedule(&m.ExamDate, &m.ExamTime, m.EndTime)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// ConflictExam is the conflicting exam attached to a 409.
type ConflictExam struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Venue    string  `json:"venue"`
	Section  *string `json:"section"`
	ExamDate string  `json:"exam_date"`
	ExamTime string  `json:"exam_time"`
}

func ToConflictExam(m *examModel.ExamModel) ConflictExam {
	return ConflictExam{
		ID:       m.ID,
		Title:    m.Title,
		Venue:    m.Venue,
		Section:  m.Section,
		ExamDate: m.ExamDate,
		ExamTime: m.ExamTime,
	}
}

// OngoingResponse: what the invigilator dashboard should show right now.
type OngoingResponse struct {
	Ongoing bool                  `json:"ongoing"`
	Exam    *examModel.ExamModel  `json:"exam"`
	Exams   []examModel.ExamModel `json:"exams"`
	Now     string                `json:"now"`
}

/* =======================================================
   helpers
   ======================================================= */

type ScheduleError struct{ Msg string }

func (e *ScheduleError) Error() string { return e.Msg }

func normalizeSchedule(date, start *string, end *string) error {
	if !dbtime.IsValidDate(*date) {
		return &ScheduleError{Msg: "exam_date must be YYYY-MM-DD"}
	}
	s, err := dbtime.NormalizeHHMM(*start)
	if err != nil {
		return &ScheduleError{Msg: "exam_time must be HH:MM"}
	}
	*start = s
	if end != nil {
		e, err := dbtime.NormalizeHHMM(*end)
		if err != nil {
			return &ScheduleError{Msg: "end_time must be HH:MM"}
		}
		if e < s {
			return &ScheduleError{Msg: "end_time must not be before exam_time"}
		}
		*end = e
	}
	return nil
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	return emptyToNil(*p)
}

func emptyToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
