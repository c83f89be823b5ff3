package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	helper "invigileye_backend/internals/helpers"
	"invigileye_backend/internals/helpers/dbtime"
)

// Zoneless layouts are read in the app timezone.
var detectedLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Activities accepts either ["a","b"] or "a, b".
type Activities []string

func (a *Activities) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*a = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Activities{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*a = list
	return nil
}

func (a Activities) String() string { return strings.Join(a, ", ") }

// PoseAlertRequest is what the camera client posts per flagged student.
type PoseAlertRequest struct {
	StudentID            string          `json:"student_id"`
	SuspiciousActivities Activities      `json:"suspicious_activities"`
	SuspicionLevel       string          `json:"suspicion_level"`
	SnapshotPath         string          `json:"snapshot_path"`
	ExamID               helper.FlexUint `json:"exam_id"`
	Timestamp            string          `json:"timestamp"`
}

func (r *PoseAlertRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.SuspicionLevel = strings.TrimSpace(r.SuspicionLevel)
	r.SnapshotPath = strings.TrimSpace(r.SnapshotPath)
	r.Timestamp = strings.TrimSpace(r.Timestamp)
}

// DetectedAt is when the camera flagged the student. A missing or unreadable
// timestamp falls back to now.
func (r *PoseAlertRequest) DetectedAt(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now
	}
	if t, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
		return t
	}
	for _, layout := range detectedLayouts {
		if t, err := time.ParseInLocation(layout, r.Timestamp, dbtime.AppLocation()); err == nil {
			return t
		}
	}
	return now
}

// SnapshotItem is one entry of GET /api/pose-detection/snapshots.
type SnapshotItem struct {
	Filename     string    `json:"filename"`
	Level        string    `json:"level"`
	StudentID    string    `json:"student_id"`
	Timestamp    string    `json:"timestamp"`
	RawTimestamp time.Time `json:"raw_timestamp"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
}
