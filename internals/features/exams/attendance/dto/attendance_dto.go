package dto

import (
	"encoding/json"
	"strings"

	helper "invigileye_backend/internals/helpers"
)

// MarkAttendanceRequest: exam_id and roll_number may each come as a number or a string.
type MarkAttendanceRequest struct {
	ExamID      helper.FlexUint   `json:"exam_id"`
	RollNumber  helper.FlexString `json:"roll_number"`
	Status      string            `json:"status"`
	SnapshotURL *string           `json:"snapshot_url"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.RollNumber = helper.FlexString(strings.TrimSpace(r.RollNumber.String()))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.SnapshotURL != nil {
		v := strings.TrimSpace(*r.SnapshotURL)
		if v == "" {
			r.SnapshotURL = nil
		} else {
			r.SnapshotURL = &v
		}
	}
}

func (r *MarkAttendanceRequest) HasRequired() bool {
	return r.ExamID > 0 && r.RollNumber != "" && r.Status != ""
}

// BulkAttendanceRequest keeps records raw so one malformed entry cannot fail the batch.
type BulkAttendanceRequest struct {
	Records *[]json.RawMessage `json:"records"`
}

// Decode returns the entries that decode and how many did not.
func (r *BulkAttendanceRequest) Decode() ([]MarkAttendanceRequest, int) {
	if r.Records == nil {
		return nil, 0
	}
	out := make([]MarkAttendanceRequest, 0, len(*r.Records))
	bad := 0
	for _, raw := range *r.Records {
		var rec MarkAttendanceRequest
		if err := json.Unmarshal(raw, &rec); err != nil {
			bad++
			continue
		}
		out = append(out, rec)
	}
	return out, bad
}

type AttendanceSummary struct {
	ExamID  uint  `json:"exam_id"`
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}
