package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceDTO "invigileye_backend/internals/features/exams/attendance/dto"
	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	examService "invigileye_backend/internals/features/exams/exams/service"
	helper "invigileye_backend/internals/helpers"
	"invigileye_backend/internals/testhelpers"
)

func seedExam(t *testing.T, db *gorm.DB, rolls ...string) uint {
	t.Helper()
	rows := make([]examService.RosterRow, 0, len(rolls))
	for _, r := range rolls {
		rows = append(rows, examService.RosterRow{RollNumber: r, Name: "Student " + r})
	}
	m := &examModel.ExamModel{
		Title: "CS101", Venue: "Room 1", ExamDate: "2025-06-01", ExamTime: "09:00",
		Status: examModel.ExamStatusScheduled,
	}
	_, err := examService.CreateExam(context.Background(), db, m, rows)
	require.NoError(t, err)
	return m.ID
}

func TestMarkOneIsIdempotent(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()
	examID := seedExam(t, db, "1", "2")

	req := &attendanceDTO.MarkAttendanceRequest{ExamID: helper.FlexUint(examID), RollNumber: "1", Status: attendanceModel.AttendancePresent}

	t1 := time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)
	n, err := MarkOne(ctx, db, req, t1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	t2 := t1.Add(time.Minute)
	n, err = MarkOne(ctx, db, req, t2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rows, err := ListByExam(ctx, db, examID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, attendanceModel.AttendancePresent, rows[0].Status)
	require.NotNil(t, rows[0].MarkedAt)
	assert.True(t, rows[0].MarkedAt.Equal(t2))
	assert.Equal(t, attendanceModel.AttendanceAbsent, rows[1].Status)
}

func TestMarkOneUnknownPair(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	examID := seedExam(t, db, "1")

	req := &attendanceDTO.MarkAttendanceRequest{ExamID: helper.FlexUint(examID), RollNumber: "404", Status: attendanceModel.AttendancePresent}
	n, err := MarkOne(context.Background(), db, req, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkBulkCountsOnlyValidPairs(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()
	examID := seedExam(t, db, "1", "2", "3")

	rec := func(roll, status string) attendanceDTO.MarkAttendanceRequest {
		return attendanceDTO.MarkAttendanceRequest{ExamID: helper.FlexUint(examID), RollNumber: helper.FlexString(roll), Status: status}
	}
	records := []attendanceDTO.MarkAttendanceRequest{
		rec("1", "present"),
		rec("2", " Present "),
		rec("99", "present"),
		rec("3", "late"),
		{RollNumber: "3", Status: "present"},
	}

	n, err := MarkBulk(ctx, db, records, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	sum, err := Summary(ctx, db, examID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, sum.Total)
	assert.EqualValues(t, 2, sum.Present)
	assert.EqualValues(t, 1, sum.Absent)
}
