package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceDTO "invigileye_backend/internals/features/exams/attendance/dto"
	attendanceService "invigileye_backend/internals/features/exams/attendance/service"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	examService "invigileye_backend/internals/features/exams/exams/service"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	helper "invigileye_backend/internals/helpers"
	userSeeds "invigileye_backend/internals/seeds/users/auth"
	"invigileye_backend/internals/testhelpers"
)

func TestExamReport(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, userSeeds.SeedUsers(db, userSeeds.DefaultUsers))

	exam := &examModel.ExamModel{
		Title: "CS101", Venue: "Room 1", ExamDate: "2025-06-01", ExamTime: "09:00",
		InvigilatorEmail: testhelpers.StrPtr("john@invigleye.com"),
		Status:           examModel.ExamStatusScheduled,
	}
	_, err := examService.CreateExam(ctx, db, exam, []examService.RosterRow{
		{RollNumber: "1", Name: "Ali"}, {RollNumber: "2", Name: "Bina"},
	})
	require.NoError(t, err)

	_, err = attendanceService.MarkOne(ctx, db, &attendanceDTO.MarkAttendanceRequest{
		ExamID: helper.FlexUint(exam.ID), RollNumber: "2", Status: "present",
	}, time.Date(2025, 6, 1, 9, 10, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, db.Create(&alertModel.AlertModel{ExamID: &exam.ID, Type: "suspicious", Severity: "medium"}).Error)
	require.NoError(t, db.Create(&requestModel.RequestModel{ExamID: &exam.ID, Type: "it", Status: "pending"}).Error)
	require.NoError(t, db.Create(&requestModel.RequestModel{ExamID: &exam.ID, Type: "umc", Status: "pending"}).Error)

	rep, err := ExamReport(ctx, db, exam.ID)
	require.NoError(t, err)
	require.NotNil(t, rep.Exam.InvigilatorName)
	assert.Equal(t, "John Doe", *rep.Exam.InvigilatorName)
	assert.EqualValues(t, 2, rep.Attendance.Total)
	assert.EqualValues(t, 1, rep.Attendance.Present)
	assert.EqualValues(t, 1, rep.Attendance.Absent)
	assert.EqualValues(t, 1, rep.AlertsCount)
	assert.EqualValues(t, 2, rep.RequestsCount)

	sum, err := Summary(ctx, db)
	require.NoError(t, err)
	require.Len(t, sum, 1)
	assert.EqualValues(t, 2, sum[0].TotalStudents)
	assert.EqualValues(t, 1, sum[0].PresentCount)
	assert.EqualValues(t, 2, sum[0].RequestsCount)

	var buf bytes.Buffer
	require.NoError(t, WriteAttendanceCSV(ctx, db, exam.ID, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "roll_number,name,status,marked_at,snapshot_url", lines[0])
	assert.Equal(t, "1,Ali,absent,,", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2,Bina,present,2025-06-01 "))
}

func TestExamReportUnknownExam(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	_, err := ExamReport(context.Background(), db, 404)
	assert.ErrorIs(t, err, examService.ErrExamNotFound)
	assert.ErrorIs(t, WriteAttendanceCSV(context.Background(), db, 404, &bytes.Buffer{}), examService.ErrExamNotFound)
}
