package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	"invigileye_backend/internals/testhelpers"
)

func TestParseRosterSkipsIncompleteRows(t *testing.T) {
	csv := "roll_number,name,image_path\n1,Ali,\n,Bad,\n"
	res, err := ParseRoster(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, RosterRow{RollNumber: "1", Name: "Ali"}, res.Rows[0])
	assert.Equal(t, 1, res.Skipped)
}

func TestParseRosterHeaderVariants(t *testing.T) {
	cases := map[string]string{
		"snake":  "roll_number,name,image_url\n",
		"spaced": "Roll Number , Student Name, Image\n",
		"short":  "\ufeffRoll No.,Name\n",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ParseRoster(strings.NewReader(header + " 21-001 ,  Sara Khan \n"))
			require.NoError(t, err)
			require.Len(t, res.Rows, 1)
			assert.Equal(t, "21-001", res.Rows[0].RollNumber)
			assert.Equal(t, "Sara Khan", res.Rows[0].Name)
		})
	}
}

func TestParseRosterDuplicateRollKeepsFirst(t *testing.T) {
	res, err := ParseRoster(strings.NewReader("roll_number,name\n1,Ali\n1,Other\n\n2,Bina\n"))
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Ali", res.Rows[0].Name)
	assert.Equal(t, "2", res.Rows[1].RollNumber)
	assert.Equal(t, 1, res.Skipped)
}

func TestParseRosterEmptyFile(t *testing.T) {
	res, err := ParseRoster(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestIngestRosterSeedsAbsentAttendance(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	m := newExam("CS101", "Room 1", "2025-06-01", "09:00", nil)
	rows := []RosterRow{
		{RollNumber: "1", Name: "Ali"},
		{RollNumber: "2", Name: "Bina", ImageURL: "/img/2.jpg"},
		{RollNumber: "3", Name: "Chen"},
	}
	added, err := CreateExam(ctx, db, m, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	var students []examModel.StudentModel
	require.NoError(t, db.Where("exam_id = ?", m.ID).Find(&students).Error)
	assert.Len(t, students, 3)

	var att []attendanceModel.AttendanceModel
	require.NoError(t, db.Where("exam_id = ?", m.ID).Find(&att).Error)
	require.Len(t, att, 3)
	for _, a := range att {
		assert.Equal(t, attendanceModel.AttendanceAbsent, a.Status)
		assert.Nil(t, a.MarkedAt)
	}
}

func TestAddRosterSkipsKnownRolls(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	m := newExam("CS101", "Room 1", "2025-06-01", "09:00", nil)
	_, err := CreateExam(ctx, db, m, []RosterRow{{RollNumber: "1", Name: "Ali"}})
	require.NoError(t, err)

	added, err := AddRoster(ctx, db, m.ID, []RosterRow{{RollNumber: "1", Name: "Ali"}, {RollNumber: "2", Name: "Bina"}})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, err = AddRoster(ctx, db, 9999, []RosterRow{{RollNumber: "1", Name: "Ali"}})
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestCreateExamConflictKeepsNoRoster(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "09:00", nil), nil)
	require.NoError(t, err)

	_, err = CreateExam(ctx, db, newExam("CS201", "Room 1", "2025-06-01", "09:00", nil),
		[]RosterRow{{RollNumber: "9", Name: "Zed"}})
	require.Error(t, err)

	var n int64
	require.NoError(t, db.Model(&examModel.StudentModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
