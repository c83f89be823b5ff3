package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invigileye_backend/internals/helpers/dbtime"
)

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name      string
		level     string
		student   string
		timestamp string
	}{
		{"Hot_Suspect_Student_0_20260101_213419.jpg", LevelHotSuspect, "Student_0", "2026-01-01 21:34:19"},
		{"Suspect_Student_12_20251231_000001.png", LevelSuspect, "Student_12", "2025-12-31 00:00:01"},
		{"Normal_Student_3_20260215_101500.JPEG", LevelNormal, "Student_3", "2026-02-15 10:15:00"},
		{"Suspect_A1_20260101_120000.jpeg", LevelSuspect, "A1", "2026-01-01 12:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseFilename(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.level, m.Level)
			assert.Equal(t, tc.student, m.StudentID)
			assert.Equal(t, tc.timestamp, m.Timestamp())
		})
	}
}

func TestParseFilenameUsesAppTimezone(t *testing.T) {
	m, err := ParseFilename("Suspect_Student_7_20260101_213419.jpg")
	require.NoError(t, err)
	assert.Same(t, dbtime.AppLocation(), m.TakenAt.Location())
	assert.True(t, m.TakenAt.Equal(time.Date(2026, 1, 1, 21, 34, 19, 0, dbtime.AppLocation())))
}

func TestParseFilenameRejects(t *testing.T) {
	bad := []string{
		"notes.txt",
		"Hot_Suspect_Student_0_20260101_213419.gif",
		"Unknown_Student_0_20260101_213419.jpg",
		"Suspect_20260101_213419.jpg",
		"Suspect_Student_0_2026010_213419.jpg",
		"Suspect_Student_0_20261301_213419.jpg",
		"Suspect_Student_0_20260101-213419.jpg",
		"../Suspect_Student_0_20260101_213419.jpg",
		"Suspect_Student_0_20260101_256000.jpg",
	}
	for _, name := range bad {
		_, err := ParseFilename(name)
		assert.ErrorIs(t, err, ErrBadFilename, name)
	}
}
