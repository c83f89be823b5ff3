package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examDTO "invigileye_backend/internals/features/exams/exams/dto"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	"invigileye_backend/internals/testhelpers"
)

func newExam(title, venue, date, tm string, section *string) *examModel.ExamModel {
	return &examModel.ExamModel{
		Title:    title,
		Venue:    venue,
		ExamDate: date,
		ExamTime: tm,
		Section:  section,
		Status:   examModel.ExamStatusScheduled,
	}
}

func TestCreateExamRoomConflict(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()
	sec := testhelpers.StrPtr("A")

	_, err := CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "09:00", sec), nil)
	require.NoError(t, err)

	_, err = CreateExam(ctx, db, newExam("CS201", "Room 1", "2025-06-01", "09:00", testhelpers.StrPtr("A")), nil)
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ConflictRoom, ce.Kind)
	assert.Equal(t, "CS101", ce.Conflict.Title)
	assert.Contains(t, ce.Message, `"CS101"`)
	assert.Contains(t, ce.Message, "Room 1 (Section A)")
	assert.Equal(t, "Room scheduling conflict", ce.Title())

	var n int64
	require.NoError(t, db.Model(&examModel.ExamModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateExamClassConflictAnyVenue(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "09:00", nil), nil)
	require.NoError(t, err)

	_, err = CreateExam(ctx, db, newExam("CS101", "Room 7", "2025-06-01", "09:00", testhelpers.StrPtr("B")), nil)
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ConflictClass, ce.Kind)
	assert.Equal(t, "Class scheduling conflict", ce.Title())
}

func TestMissingSectionOnlyMatchesMissingSection(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "09:00", nil), nil)
	require.NoError(t, err)

	// same room and time, but a concrete section
	_, err = CreateExam(ctx, db, newExam("CS201", "Room 1", "2025-06-01", "09:00", testhelpers.StrPtr("A")), nil)
	require.NoError(t, err)

	// both sections absent
	_, err = CreateExam(ctx, db, newExam("CS301", "Room 1", "2025-06-01", "09:00", nil), nil)
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ConflictRoom, ce.Kind)
	assert.Equal(t, "CS101", ce.Conflict.Title)
}

func TestDifferentTimeIsAdmitted(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	_, err := CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "09:00", nil), nil)
	require.NoError(t, err)
	_, err = CreateExam(ctx, db, newExam("CS101", "Room 1", "2025-06-01", "13:00", nil), nil)
	require.NoError(t, err)
}

func TestUpdateExamExcludesItself(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	a := newExam("CS101", "Room 1", "2025-06-01", "09:00", nil)
	_, err := CreateExam(ctx, db, a, nil)
	require.NoError(t, err)
	b := newExam("CS201", "Room 2", "2025-06-01", "09:00", nil)
	_, err = CreateExam(ctx, db, b, nil)
	require.NoError(t, err)

	// touching its own slot is fine
	got, err := UpdateExam(ctx, db, a.ID, &examDTO.UpdateExamRequest{Venue: testhelpers.StrPtr("Room 1")})
	require.NoError(t, err)
	assert.Equal(t, "Room 1", got.Venue)

	// moving into b's room is not
	_, err = UpdateExam(ctx, db, a.ID, &examDTO.UpdateExamRequest{Venue: testhelpers.StrPtr("Room 2")})
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, b.ID, ce.Conflict.ID)
}

func TestUpdateExamStatusMovement(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	m := newExam("CS101", "Room 1", "2025-06-01", "09:00", nil)
	_, err := CreateExam(ctx, db, m, nil)
	require.NoError(t, err)

	got, err := UpdateExam(ctx, db, m.ID, &examDTO.UpdateExamRequest{Status: testhelpers.StrPtr(examModel.ExamStatusCompleted)})
	require.NoError(t, err)
	assert.True(t, got.IsCompleted())

	_, err = UpdateExam(ctx, db, m.ID, &examDTO.UpdateExamRequest{Status: testhelpers.StrPtr(examModel.ExamStatusScheduled)})
	assert.ErrorIs(t, err, ErrInvalidStatusMovement)

	_, err = UpdateExam(ctx, db, 9999, &examDTO.UpdateExamRequest{})
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestEndAndDeleteUnknownExam(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, EndExam(ctx, db, 42), ErrExamNotFound)
	assert.ErrorIs(t, DeleteExam(ctx, db, 42), ErrExamNotFound)
}

func TestDeleteExamCascades(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	m := newExam("CS101", "Room 1", "2025-06-01", "09:00", nil)
	added, err := CreateExam(ctx, db, m, []RosterRow{{RollNumber: "1", Name: "Ali"}})
	require.NoError(t, err)
	require.Equal(t, 1, added)

	require.NoError(t, DeleteExam(ctx, db, m.ID))

	var n int64
	require.NoError(t, db.Model(&examModel.StudentModel{}).Where("exam_id = ?", m.ID).Count(&n).Error)
	assert.Zero(t, n)
}
