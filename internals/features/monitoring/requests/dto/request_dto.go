package dto

import (
	"encoding/json"
	"strings"
	"time"

	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	helper "invigileye_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateRequestRequest: either a structured payload, a bare description, or both.
// When both are sent the description is kept as written.
type CreateRequestRequest struct {
	ExamID      helper.FlexUint `json:"exam_id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Payload     json.RawMessage `json:"payload"`
}

func (r *CreateRequestRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateRequestRequest) HasPayload() bool {
	p := strings.TrimSpace(string(r.Payload))
	return p != "" && p != "null"
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateRequestStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// RequestRow is one request LEFT JOINed with its exam.
type RequestRow struct {
	ID          uint       `gorm:"column:id"`
	ExamID      *uint      `gorm:"column:exam_id"`
	Type        string     `gorm:"column:type"`
	Description string     `gorm:"column:description"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`

	ExamTitle        *string `gorm:"column:exam_title"`
	ExamVenue        *string `gorm:"column:exam_venue"`
	ExamSection      *string `gorm:"column:exam_section"`
	ExamDate         *string `gorm:"column:exam_date"`
	ExamTime         *string `gorm:"column:exam_time"`
	EndTime          *string `gorm:"column:end_time"`
	ExamDepartment   *string `gorm:"column:exam_department"`
	InvigilatorEmail *string `gorm:"column:invigilator_email"`
}

type RequestResponse struct {
	ID          uint       `json:"id"`
	ExamID      *uint      `json:"exam_id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Payload     any        `json:"payload"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`

	ExamTitle        *string `json:"exam_title,omitempty"`
	ExamVenue        *string `json:"exam_venue,omitempty"`
	ExamSection      *string `json:"exam_section,omitempty"`
	ExamDate         *string `json:"exam_date,omitempty"`
	ExamTime         *string `json:"exam_time,omitempty"`
	EndTime          *string `json:"end_time,omitempty"`
	ExamDepartment   *string `json:"exam_department,omitempty"`
	InvigilatorEmail *string `json:"invigilator_email,omitempty"`
}

// payloadView renders the stored payload as {"kind":..., ...fields}; nil when absent
// or unreadable.
func payloadView(raw []byte) any {
	p, err := requestModel.DecodePayload(raw)
	if err != nil || p == nil {
		return nil
	}
	return map[string]any{"kind": p.Kind(), "data": p}
}

func FromModel(m *requestModel.RequestModel) RequestResponse {
	return RequestResponse{
		ID:          m.ID,
		ExamID:      m.ExamID,
		Type:        m.Type,
		Description: m.Description,
		Payload:     payloadView(m.Payload),
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		ResolvedAt:  m.ResolvedAt,
	}
}

func FromModels(rows []requestModel.RequestModel) []RequestResponse {
	out := make([]RequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func FromRows(rows []RequestRow) []RequestResponse {
	out := make([]RequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RequestResponse{
			ID:               r.ID,
			ExamID:           r.ExamID,
			Type:             r.Type,
			Description:      r.Description,
			Payload:          payloadView(r.Payload),
			Status:           r.Status,
			CreatedAt:        r.CreatedAt,
			ResolvedAt:       r.ResolvedAt,
			ExamTitle:        r.ExamTitle,
			ExamVenue:        r.ExamVenue,
			ExamSection:      r.ExamSection,
			ExamDate:         r.ExamDate,
			ExamTime:         r.ExamTime,
			EndTime:          r.EndTime,
			ExamDepartment:   r.ExamDepartment,
			InvigilatorEmail: r.InvigilatorEmail,
		})
	}
	return out
}
