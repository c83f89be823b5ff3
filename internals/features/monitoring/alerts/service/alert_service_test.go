package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examModel "invigileye_backend/internals/features/exams/exams/model"
	alertDTO "invigileye_backend/internals/features/monitoring/alerts/dto"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	helper "invigileye_backend/internals/helpers"
	"invigileye_backend/internals/testhelpers"
)

func TestAlertLifecycle(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	exam := &examModel.ExamModel{Title: "CS101", Venue: "Room 1", ExamDate: "2025-06-01", ExamTime: "09:00", Status: "scheduled"}
	require.NoError(t, db.Create(exam).Error)

	req := alertDTO.CreateAlertRequest{ExamID: helper.FlexUint(exam.ID), Type: "suspicious", Description: "phone"}
	req.Normalize()
	assert.Equal(t, alertModel.SeverityMedium, req.Severity)

	m := req.ToModel()
	require.NoError(t, Create(ctx, db, m))
	assert.False(t, m.Acknowledged)

	require.NoError(t, Acknowledge(ctx, db, m.ID))
	require.NoError(t, Acknowledge(ctx, db, m.ID))
	assert.ErrorIs(t, Acknowledge(ctx, db, 999), ErrAlertNotFound)

	rows, err := ListRecent(ctx, db, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Acknowledged)
	require.NotNil(t, rows[0].ExamTitle)
	assert.Equal(t, "CS101", *rows[0].ExamTitle)
	require.NotNil(t, rows[0].Venue)
	assert.Equal(t, "Room 1", *rows[0].Venue)

	require.NoError(t, Delete(ctx, db, m.ID))
	assert.ErrorIs(t, Delete(ctx, db, m.ID), ErrAlertNotFound)
}

func TestListRecentHonoursLimit(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, Create(ctx, db, &alertModel.AlertModel{Type: "suspicious", Severity: "low"}))
	}
	rows, err := ListRecent(ctx, db, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Greater(t, rows[0].ID, rows[2].ID)
}
